// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stackboard Contributors

// Package board contains the task-board domain: boards, lists, and cards,
// their persistence interfaces, and the ownership-chain authorization that
// governs every operation on them.
//
// Ownership is a strict tree: User → Board → List → Card. Every entity
// resolves to exactly one owning user by walking parent references, and all
// reads and writes are authorized against that owner.
package board

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Board is a top-level container owned by exactly one user.
type Board struct {
	ID          ulid.ULID
	Title       string
	Description string
	OwnerID     ulid.ULID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBoard constructs a Board with a fresh ID and timestamps.
func NewBoard(title, description string, ownerID ulid.ULID) *Board {
	now := time.Now().UTC()
	return &Board{
		ID:          ulid.Make(),
		Title:       title,
		Description: description,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// BoardPatch describes a partial update to a board. A nil field is left
// untouched; a non-nil field replaces the stored value, so an explicit
// empty string clears the description.
type BoardPatch struct {
	Title       *string
	Description *string
}

// IsEmpty reports whether the patch changes nothing.
func (p BoardPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil
}
