package models

import "time"

// User is a registered identity. It is the only record the authentication
// subsystem reads or mutates.
//
// PasswordHash and the reset-code pair are never serialized; use
// [User.Public] to build the API representation.
type User struct {
	// UserID is assigned by the store at creation and never changes.
	UserID int64 `json:"id"`

	// Username and Email are unique across all users and compared
	// case-sensitively.
	Username string `json:"username"`
	Email    string `json:"email"`

	// PasswordHash is the output of the password hasher. A plaintext
	// password is never assigned here.
	PasswordHash string `json:"-"`

	// ResetCode is the pending one-time password-reset code. Nil when no
	// reset is in progress; always set together with ResetCodeExpiresAt.
	ResetCode *string `json:"-"`

	// ResetCodeExpiresAt is the instant at which ResetCode stops being valid.
	ResetCodeExpiresAt *time.Time `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// HasPendingReset reports whether a reset code is currently stored.
func (u User) HasPendingReset() bool {
	return u.ResetCode != nil && u.ResetCodeExpiresAt != nil
}

// Public returns the API-safe view of the user.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:       u.UserID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// PublicUser is the representation of a user returned by the API.
type PublicUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
