// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself, before a request
// reaches a service.
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidQueryParam is returned for a malformed query or path
	// parameter.
	ErrInvalidQueryParam = errors.New("invalid request parameter")

	// ErrNoUserInContext means an authenticated route ran without the auth
	// middleware.
	ErrNoUserInContext = errors.New("no authenticated user in request context")
)

// Details returned to clients.
const (
	detailNotAuthenticated   = "Could not validate credentials"
	detailWrongCredentials   = "Incorrect username or password"
	detailNotFound           = "Not Found"
	detailMethodNotAllowed   = "Method Not Allowed"
	detailInternalError      = "Internal Server Error"
	messageWelcome           = "Welcome to the Expense Tracker API!"
	messageResetRequested    = "If the email is registered, a reset code has been sent"
	messagePasswordResetDone = "Password has been reset successfully"
)
