package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-expense-keeper/internal/config"
	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	_ "github.com/mattn/go-sqlite3"
)

// NewConnectSQLite opens a SQLite pool. Intended for local development and
// tests.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn, path := sqliteDSN(cfg.DSN)

	// db will be in file
	if err := createLocalDBDirIfNotExists(path); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database directory")
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// every connection to ":memory:" opens its own empty database
	if path == "" {
		conn.SetMaxOpenConns(1)
	}

	classifier := NewSQLiteErrorClassifier()

	// ping database
	if err = pingWithRetry(ctx, conn, classifier, log); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return newDB(conn, DialectSQLite, classifier, log), nil
}

// sqliteDSN converts a "sqlite://" or "file:" DSN into a go-sqlite3 DSN with
// foreign keys and a busy timeout enabled. It also returns the database file
// path, empty for in-memory databases.
func sqliteDSN(dsn string) (string, string) {
	name := strings.TrimPrefix(dsn, "sqlite://")

	path := strings.TrimPrefix(name, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == ":memory:" || strings.Contains(name, "mode=memory") {
		path = ""
	}

	if !strings.Contains(name, "?") {
		name += "?_foreign_keys=on&_busy_timeout=5000"
	}

	return name, path
}

func createLocalDBDirIfNotExists(dbFile string) error {
	if dbFile == "" {
		return nil
	}

	dir := filepath.Dir(dbFile)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("error creating DB directory: %w", err)
	}

	return nil
}
