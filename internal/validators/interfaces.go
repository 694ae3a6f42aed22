// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach storage.
//
// Credential payloads (signup, password change and the reset flow) are
// validated by [NewCredentialsValidator]; expenses and list requests by
// [NewExpenseValidator]. Both return a wrapped sentinel from errors.go so
// services can tell a malformed reset code apart from other bad input.
package validators

import "context"

// Validator checks a value. When fields are given, only those fields are
// checked; otherwise the validator applies its default set.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
