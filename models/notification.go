package models

import "time"

// ResetNotification is the message handed to a notifier after a reset code
// has been stored.
type ResetNotification struct {
	Email     string
	Username  string
	Code      string
	ExpiresAt time.Time
	// ValidFor is the code lifetime as configured, for display.
	ValidFor time.Duration
}
