// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stackboard Contributors

package board

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested entity, or a link in its
// ownership chain, does not exist.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned when the acting user is not the transitive owner
// of the target entity. Deny is terminal: there is no role hierarchy and no
// admin bypass.
var ErrForbidden = errors.New("forbidden")

// ValidationError represents an input validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
