// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stackboard Contributors

package auth

import "errors"

// Sentinel errors for the auth domain. Callers match these with errors.Is;
// the oops wrappers layered on top carry codes and context for logging.
var (
	// ErrNotFound is returned when a requested user does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a username or email is already registered.
	ErrConflict = errors.New("already registered")

	// ErrInvalidCredentials is returned when login fails. The same error is
	// used for unknown email and wrong password so callers cannot probe for
	// registered addresses.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken is returned when a bearer token is malformed, expired,
	// carries no subject, or fails signature verification.
	ErrInvalidToken = errors.New("invalid token")

	// ErrUnauthenticated is returned when a request cannot be attributed to
	// a known user.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden is returned when an authenticated user targets an
	// account other than their own.
	ErrForbidden = errors.New("forbidden")
)
