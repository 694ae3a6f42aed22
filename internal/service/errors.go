package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrDuplicateIdentity is returned by signup when the username or email
	// is already registered.
	ErrDuplicateIdentity = errors.New("username or email already registered")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	ErrTokenCreationFailed = errors.New("token creation failed")

	// Token verification failures. The transport layer answers all three
	// with the same "unauthenticated" response.
	ErrExpiredToken     = errors.New("token is expired")
	ErrInvalidSignature = errors.New("token signature is invalid")
	ErrMalformedToken   = errors.New("token is malformed")

	// ErrUnknownSubject is returned for a valid token whose identity no
	// longer exists.
	ErrUnknownSubject = errors.New("token subject is unknown")

	// ErrInvalidOrExpiredResetCode is the single outcome of every failed
	// reset verification, whatever the reason.
	ErrInvalidOrExpiredResetCode = errors.New("invalid or expired reset code")

	ErrExpenseNotFound = errors.New("expense not found")
)
