// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stackboard Contributors

package board

import (
	"context"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
)

// Guard decides allow/deny for operations on boards, lists, and cards by
// walking the ownership chain to the owning user through explicit
// repository lookups. Each step that fails to resolve — the target itself
// or a dangling parent reference — is reported as ErrNotFound, never
// ErrForbidden, so a denial always means the chain resolved to a different
// owner.
type Guard struct {
	boards BoardRepository
	lists  ListRepository
	cards  CardRepository
}

// NewGuard creates a Guard backed by the given repositories.
func NewGuard(boards BoardRepository, lists ListRepository, cards CardRepository) *Guard {
	return &Guard{boards: boards, lists: lists, cards: cards}
}

// BoardOwner resolves the owner of a board.
func (g *Guard) BoardOwner(ctx context.Context, boardID ulid.ULID) (ulid.ULID, error) {
	b, err := g.boards.Get(ctx, boardID)
	if err != nil {
		return ulid.ULID{}, oops.Wrapf(err, "resolve owner of board %s", boardID)
	}
	return b.OwnerID, nil
}

// ListOwner resolves the owner of a list via its board.
func (g *Guard) ListOwner(ctx context.Context, listID ulid.ULID) (ulid.ULID, error) {
	l, err := g.lists.Get(ctx, listID)
	if err != nil {
		return ulid.ULID{}, oops.Wrapf(err, "resolve owner of list %s", listID)
	}
	return g.BoardOwner(ctx, l.BoardID)
}

// CardOwner resolves the owner of a card via its list and board.
func (g *Guard) CardOwner(ctx context.Context, cardID ulid.ULID) (ulid.ULID, error) {
	c, err := g.cards.Get(ctx, cardID)
	if err != nil {
		return ulid.ULID{}, oops.Wrapf(err, "resolve owner of card %s", cardID)
	}
	return g.ListOwner(ctx, c.ListID)
}

// Authorize compares the resolved owner against the acting user. Exact
// equality only: no delegation, no shared access.
func (g *Guard) Authorize(principal, owner ulid.ULID) error {
	if principal != owner {
		return oops.Code("BOARD_FORBIDDEN").
			With("principal", principal.String()).
			Wrap(ErrForbidden)
	}
	return nil
}
