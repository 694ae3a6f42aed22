package server

// Server defines the lifecycle contract of the process-level server.
//
// [RunServer] blocks until a stop signal arrives or a component fails, and
// [Shutdown] releases the listener.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
