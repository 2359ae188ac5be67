// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stackboard Contributors

package board

import "github.com/oklog/ulid/v2"

// List is a column on a board. Its owner is the owner of its board.
type List struct {
	ID      ulid.ULID
	Title   string
	BoardID ulid.ULID
}

// NewList constructs a List with a fresh ID.
func NewList(title string, boardID ulid.ULID) *List {
	return &List{
		ID:      ulid.Make(),
		Title:   title,
		BoardID: boardID,
	}
}

// ListPatch describes a partial update to a list.
type ListPatch struct {
	Title *string
}

// IsEmpty reports whether the patch changes nothing.
func (p ListPatch) IsEmpty() bool {
	return p.Title == nil
}
