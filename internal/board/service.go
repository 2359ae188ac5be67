// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stackboard Contributors

package board

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
)

// Service orchestrates guard checks and repository calls, one routine per
// entity kind and operation. Every write either fully succeeds and returns
// the resulting (or just-deleted) snapshot, or fails with one tagged error
// and leaves state unchanged. Reads authorize before returning data; no
// data accompanies a denial.
//
// For creation the guard runs against the claimed parent, since the new
// entity cannot be checked against itself before it exists.
type Service struct {
	boards BoardRepository
	lists  ListRepository
	cards  CardRepository
	guard  *Guard
}

// ServiceConfig holds dependencies for Service.
type ServiceConfig struct {
	BoardRepo BoardRepository
	ListRepo  ListRepository
	CardRepo  CardRepository
}

// NewService creates a new Service with the given configuration.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		boards: cfg.BoardRepo,
		lists:  cfg.ListRepo,
		cards:  cfg.CardRepo,
		guard:  NewGuard(cfg.BoardRepo, cfg.ListRepo, cfg.CardRepo),
	}
}

// --- Boards ---

// GetBoard retrieves a board the principal owns.
func (s *Service) GetBoard(ctx context.Context, principal, id ulid.ULID) (*Board, error) {
	b, err := s.boards.Get(ctx, id)
	if err != nil {
		return nil, oops.Wrapf(err, "get board %s", id)
	}
	if err := s.guard.Authorize(principal, b.OwnerID); err != nil {
		return nil, err
	}
	return b, nil
}

// ListBoards returns all boards owned by ownerID. Only the owner may list
// their own boards.
func (s *Service) ListBoards(ctx context.Context, principal, ownerID ulid.ULID) ([]*Board, error) {
	if err := s.guard.Authorize(principal, ownerID); err != nil {
		return nil, err
	}
	boards, err := s.boards.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, oops.Wrapf(err, "list boards for owner %s", ownerID)
	}
	return boards, nil
}

// CreateBoard creates a board owned by the principal.
func (s *Service) CreateBoard(ctx context.Context, principal ulid.ULID, title, description string) (*Board, error) {
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}
	if err := ValidateDescription(description); err != nil {
		return nil, err
	}
	b := NewBoard(title, description, principal)
	if err := s.boards.Create(ctx, b); err != nil {
		return nil, oops.Wrapf(err, "create board %s", b.ID)
	}
	return b, nil
}

// UpdateBoard applies a partial update to a board the principal owns.
// An empty patch returns the board unchanged.
func (s *Service) UpdateBoard(ctx context.Context, principal, id ulid.ULID, patch BoardPatch) (*Board, error) {
	b, err := s.boards.Get(ctx, id)
	if err != nil {
		return nil, oops.Wrapf(err, "get board %s", id)
	}
	if err := s.guard.Authorize(principal, b.OwnerID); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return b, nil
	}

	if patch.Title != nil {
		if err := ValidateTitle(*patch.Title); err != nil {
			return nil, err
		}
		b.Title = *patch.Title
	}
	if patch.Description != nil {
		if err := ValidateDescription(*patch.Description); err != nil {
			return nil, err
		}
		b.Description = *patch.Description
	}
	b.UpdatedAt = time.Now().UTC()

	if err := s.boards.Update(ctx, b); err != nil {
		return nil, oops.Wrapf(err, "update board %s", id)
	}
	return b, nil
}

// DeleteBoard deletes a board the principal owns, cascading to its lists
// and their cards. Returns the deleted snapshot.
func (s *Service) DeleteBoard(ctx context.Context, principal, id ulid.ULID) (*Board, error) {
	b, err := s.boards.Get(ctx, id)
	if err != nil {
		return nil, oops.Wrapf(err, "get board %s", id)
	}
	if err := s.guard.Authorize(principal, b.OwnerID); err != nil {
		return nil, err
	}
	if err := s.boards.Delete(ctx, id); err != nil {
		return nil, oops.Wrapf(err, "delete board %s", id)
	}
	return b, nil
}

// --- Lists ---

// GetList retrieves a list whose board the principal owns.
func (s *Service) GetList(ctx context.Context, principal, id ulid.ULID) (*List, error) {
	l, err := s.lists.Get(ctx, id)
	if err != nil {
		return nil, oops.Wrapf(err, "get list %s", id)
	}
	owner, err := s.guard.BoardOwner(ctx, l.BoardID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.Authorize(principal, owner); err != nil {
		return nil, err
	}
	return l, nil
}

// ListsByBoard returns all lists on a board the principal owns.
func (s *Service) ListsByBoard(ctx context.Context, principal, boardID ulid.ULID) ([]*List, error) {
	owner, err := s.guard.BoardOwner(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.Authorize(principal, owner); err != nil {
		return nil, err
	}
	lists, err := s.lists.ListByBoard(ctx, boardID)
	if err != nil {
		return nil, oops.Wrapf(err, "list lists for board %s", boardID)
	}
	return lists, nil
}

// CreateList creates a list under a board the principal owns. The claimed
// board is resolved and authorized before the row is inserted; a missing
// board fails with ErrNotFound.
func (s *Service) CreateList(ctx context.Context, principal, boardID ulid.ULID, title string) (*List, error) {
	owner, err := s.guard.BoardOwner(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.Authorize(principal, owner); err != nil {
		return nil, err
	}
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}
	l := NewList(title, boardID)
	if err := s.lists.Create(ctx, l); err != nil {
		return nil, oops.Wrapf(err, "create list %s", l.ID)
	}
	return l, nil
}

// UpdateList applies a partial update to a list whose board the principal
// owns.
func (s *Service) UpdateList(ctx context.Context, principal, id ulid.ULID, patch ListPatch) (*List, error) {
	l, err := s.lists.Get(ctx, id)
	if err != nil {
		return nil, oops.Wrapf(err, "get list %s", id)
	}
	owner, err := s.guard.BoardOwner(ctx, l.BoardID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.Authorize(principal, owner); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return l, nil
	}

	if patch.Title != nil {
		if err := ValidateTitle(*patch.Title); err != nil {
			return nil, err
		}
		l.Title = *patch.Title
	}

	if err := s.lists.Update(ctx, l); err != nil {
		return nil, oops.Wrapf(err, "update list %s", id)
	}
	return l, nil
}

// DeleteList deletes a list whose board the principal owns, cascading to
// its cards. Returns the deleted snapshot.
func (s *Service) DeleteList(ctx context.Context, principal, id ulid.ULID) (*List, error) {
	l, err := s.lists.Get(ctx, id)
	if err != nil {
		return nil, oops.Wrapf(err, "get list %s", id)
	}
	owner, err := s.guard.BoardOwner(ctx, l.BoardID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.Authorize(principal, owner); err != nil {
		return nil, err
	}
	if err := s.lists.Delete(ctx, id); err != nil {
		return nil, oops.Wrapf(err, "delete list %s", id)
	}
	return l, nil
}

// --- Cards ---

// GetCard retrieves a card whose transitive owner is the principal.
func (s *Service) GetCard(ctx context.Context, principal, id ulid.ULID) (*Card, error) {
	c, err := s.cards.Get(ctx, id)
	if err != nil {
		return nil, oops.Wrapf(err, "get card %s", id)
	}
	owner, err := s.guard.ListOwner(ctx, c.ListID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.Authorize(principal, owner); err != nil {
		return nil, err
	}
	return c, nil
}

// CardsByList returns all cards on a list the principal owns through its
// board.
func (s *Service) CardsByList(ctx context.Context, principal, listID ulid.ULID) ([]*Card, error) {
	owner, err := s.guard.ListOwner(ctx, listID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.Authorize(principal, owner); err != nil {
		return nil, err
	}
	cards, err := s.cards.ListByList(ctx, listID)
	if err != nil {
		return nil, oops.Wrapf(err, "list cards for list %s", listID)
	}
	return cards, nil
}

// CreateCard creates a card under a list the principal owns. The claimed
// list's chain is resolved and authorized before the row is inserted.
func (s *Service) CreateCard(ctx context.Context, principal, listID ulid.ULID, title, description string, position int, dueDate *time.Time) (*Card, error) {
	owner, err := s.guard.ListOwner(ctx, listID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.Authorize(principal, owner); err != nil {
		return nil, err
	}
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}
	if err := ValidateDescription(description); err != nil {
		return nil, err
	}
	if err := ValidatePosition(position); err != nil {
		return nil, err
	}
	c := NewCard(title, description, listID, position, dueDate)
	if err := s.cards.Create(ctx, c); err != nil {
		return nil, oops.Wrapf(err, "create card %s", c.ID)
	}
	return c, nil
}

// UpdateCard applies a partial update to a card whose transitive owner is
// the principal.
func (s *Service) UpdateCard(ctx context.Context, principal, id ulid.ULID, patch CardPatch) (*Card, error) {
	c, err := s.cards.Get(ctx, id)
	if err != nil {
		return nil, oops.Wrapf(err, "get card %s", id)
	}
	owner, err := s.guard.ListOwner(ctx, c.ListID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.Authorize(principal, owner); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return c, nil
	}

	if patch.Title != nil {
		if err := ValidateTitle(*patch.Title); err != nil {
			return nil, err
		}
		c.Title = *patch.Title
	}
	if patch.Description != nil {
		if err := ValidateDescription(*patch.Description); err != nil {
			return nil, err
		}
		c.Description = *patch.Description
	}
	if patch.Position != nil {
		if err := ValidatePosition(*patch.Position); err != nil {
			return nil, err
		}
		c.Position = *patch.Position
	}
	if patch.DueDate != nil {
		c.DueDate = patch.DueDate
	}

	if err := s.cards.Update(ctx, c); err != nil {
		return nil, oops.Wrapf(err, "update card %s", id)
	}
	return c, nil
}

// DeleteCard deletes a card whose transitive owner is the principal.
// Returns the deleted snapshot.
func (s *Service) DeleteCard(ctx context.Context, principal, id ulid.ULID) (*Card, error) {
	c, err := s.cards.Get(ctx, id)
	if err != nil {
		return nil, oops.Wrapf(err, "get card %s", id)
	}
	owner, err := s.guard.ListOwner(ctx, c.ListID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.Authorize(principal, owner); err != nil {
		return nil, err
	}
	if err := s.cards.Delete(ctx, id); err != nil {
		return nil, oops.Wrapf(err, "delete card %s", id)
	}
	return c, nil
}
