// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stackboard Contributors

package board

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Card is a task on a list. Position is a caller-assigned ordering hint
// with no uniqueness enforced. Its owner is the owner of the board its
// list belongs to.
type Card struct {
	ID          ulid.ULID
	Title       string
	Description string
	ListID      ulid.ULID
	Position    int
	DueDate     *time.Time
}

// NewCard constructs a Card with a fresh ID.
func NewCard(title, description string, listID ulid.ULID, position int, dueDate *time.Time) *Card {
	return &Card{
		ID:          ulid.Make(),
		Title:       title,
		Description: description,
		ListID:      listID,
		Position:    position,
		DueDate:     dueDate,
	}
}

// CardPatch describes a partial update to a card. A nil field is left
// untouched. DueDate cannot be cleared through a patch, only replaced.
type CardPatch struct {
	Title       *string
	Description *string
	Position    *int
	DueDate     *time.Time
}

// IsEmpty reports whether the patch changes nothing.
func (p CardPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Position == nil && p.DueDate == nil
}
