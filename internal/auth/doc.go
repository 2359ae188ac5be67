// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stackboard Contributors

// Package auth provides account management, password hashing, and
// bearer-token authentication for Stackboard.
//
// The package owns two boundaries: the credential boundary (hashing and
// verifying passwords, issuing and parsing signed tokens) and the identity
// boundary (resolving a presented token to a User). Everything behind a
// protected operation passes through Service.Resolve before any
// authorization decision is made.
package auth
