// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stackboard Contributors

package board

import (
	"context"

	"github.com/oklog/ulid/v2"
)

// BoardRepository manages board persistence.
type BoardRepository interface {
	// Get retrieves a board by ID.
	Get(ctx context.Context, id ulid.ULID) (*Board, error)

	// Create persists a new board. A missing owner surfaces as ErrNotFound.
	Create(ctx context.Context, b *Board) error

	// Update modifies an existing board.
	Update(ctx context.Context, b *Board) error

	// Delete removes a board by ID. Its lists and their cards are removed
	// in the same statement by the schema's cascading foreign keys.
	Delete(ctx context.Context, id ulid.ULID) error

	// ListByOwner returns all boards owned by a user.
	ListByOwner(ctx context.Context, ownerID ulid.ULID) ([]*Board, error)
}

// ListRepository manages list persistence.
type ListRepository interface {
	// Get retrieves a list by ID.
	Get(ctx context.Context, id ulid.ULID) (*List, error)

	// Create persists a new list. A missing board surfaces as ErrNotFound.
	Create(ctx context.Context, l *List) error

	// Update modifies an existing list.
	Update(ctx context.Context, l *List) error

	// Delete removes a list by ID, cascading to its cards.
	Delete(ctx context.Context, id ulid.ULID) error

	// ListByBoard returns all lists on a board.
	ListByBoard(ctx context.Context, boardID ulid.ULID) ([]*List, error)
}

// CardRepository manages card persistence.
type CardRepository interface {
	// Get retrieves a card by ID.
	Get(ctx context.Context, id ulid.ULID) (*Card, error)

	// Create persists a new card. A missing list surfaces as ErrNotFound.
	Create(ctx context.Context, c *Card) error

	// Update modifies an existing card.
	Update(ctx context.Context, c *Card) error

	// Delete removes a card by ID.
	Delete(ctx context.Context, id ulid.ULID) error

	// ListByList returns all cards on a list.
	ListByList(ctx context.Context, listID ulid.ULID) ([]*Card, error)
}
