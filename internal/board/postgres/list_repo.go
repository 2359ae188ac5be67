// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stackboard Contributors

package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"

	"github.com/stackboard/stackboard/internal/board"
)

// ListRepository implements board.ListRepository using PostgreSQL.
type ListRepository struct {
	db db
}

// NewListRepository creates a new ListRepository.
func NewListRepository(db db) *ListRepository {
	return &ListRepository{db: db}
}

// Get retrieves a list by ID.
func (r *ListRepository) Get(ctx context.Context, id ulid.ULID) (*board.List, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, title, board_id FROM lists WHERE id = $1
	`, id.String())
	l, err := scanListRow(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("LIST_NOT_FOUND").With("id", id.String()).Wrap(board.ErrNotFound)
	}
	if err != nil {
		return nil, oops.With("operation", "get list").With("id", id.String()).Wrap(err)
	}
	return l, nil
}

// Create persists a new list.
// Callers must validate the list before calling this method.
func (r *ListRepository) Create(ctx context.Context, l *board.List) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO lists (id, title, board_id) VALUES ($1, $2, $3)
	`, l.ID.String(), l.Title, l.BoardID.String())
	if err != nil {
		if isForeignKeyViolation(err) {
			return oops.Code("LIST_BOARD_NOT_FOUND").
				With("board_id", l.BoardID.String()).
				Wrap(board.ErrNotFound)
		}
		return oops.With("operation", "create list").With("id", l.ID.String()).Wrap(err)
	}
	return nil
}

// Update modifies an existing list.
func (r *ListRepository) Update(ctx context.Context, l *board.List) error {
	result, err := r.db.Exec(ctx, `
		UPDATE lists SET title = $2 WHERE id = $1
	`, l.ID.String(), l.Title)
	if err != nil {
		return oops.With("operation", "update list").With("id", l.ID.String()).Wrap(err)
	}
	if result.RowsAffected() == 0 {
		return oops.Code("LIST_NOT_FOUND").With("id", l.ID.String()).Wrap(board.ErrNotFound)
	}
	return nil
}

// Delete removes a list by ID, cascading to its cards.
func (r *ListRepository) Delete(ctx context.Context, id ulid.ULID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM lists WHERE id = $1`, id.String())
	if err != nil {
		return oops.With("operation", "delete list").With("id", id.String()).Wrap(err)
	}
	if result.RowsAffected() == 0 {
		return oops.Code("LIST_NOT_FOUND").With("id", id.String()).Wrap(board.ErrNotFound)
	}
	return nil
}

// ListByBoard returns all lists on a board.
func (r *ListRepository) ListByBoard(ctx context.Context, boardID ulid.ULID) ([]*board.List, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, board_id FROM lists WHERE board_id = $1 ORDER BY id
	`, boardID.String())
	if err != nil {
		return nil, oops.With("operation", "list lists by board").With("board_id", boardID.String()).Wrap(err)
	}
	defer rows.Close()

	lists := make([]*board.List, 0)
	for rows.Next() {
		var l board.List
		var idStr, boardStr string
		if err := rows.Scan(&idStr, &l.Title, &boardStr); err != nil {
			return nil, oops.With("operation", "scan list").Wrap(err)
		}
		if err := parseListIDs(&l, idStr, boardStr); err != nil {
			return nil, err
		}
		lists = append(lists, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, oops.With("operation", "iterate lists").Wrap(err)
	}
	return lists, nil
}

// scanListRow scans a single list from a row.
func scanListRow(row pgx.Row) (*board.List, error) {
	var l board.List
	var idStr, boardStr string

	err := row.Scan(&idStr, &l.Title, &boardStr)
	if err != nil {
		return nil, err
	}
	if err := parseListIDs(&l, idStr, boardStr); err != nil {
		return nil, err
	}
	return &l, nil
}

func parseListIDs(l *board.List, idStr, boardStr string) error {
	var err error
	l.ID, err = ulid.Parse(idStr)
	if err != nil {
		return oops.With("operation", "parse list id").With("id", idStr).Wrap(err)
	}
	l.BoardID, err = ulid.Parse(boardStr)
	if err != nil {
		return oops.With("operation", "parse board id").With("board_id", boardStr).Wrap(err)
	}
	return nil
}

// Compile-time interface check.
var _ board.ListRepository = (*ListRepository)(nil)
