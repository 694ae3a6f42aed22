package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUsername = errors.New("username must be 1-64 characters without surrounding spaces")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrInvalidPassword = errors.New("password must be 1-72 bytes")
	ErrInvalidCode     = errors.New("reset code must be 6 digits")

	ErrInvalidOwnerID   = errors.New("invalid owner ID")
	ErrInvalidExpenseID = errors.New("invalid expense ID")
	ErrEmptyTitle       = errors.New("title is required")
	ErrInvalidAmount    = errors.New("amount must be greater than zero")
	ErrEmptyCategory    = errors.New("category is required")
	ErrEmptyDate        = errors.New("date is required")
	ErrInvalidLimit     = errors.New("limit is out of range")
)
