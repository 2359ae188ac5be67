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

// BoardRepository implements board.BoardRepository using PostgreSQL.
type BoardRepository struct {
	db db
}

// NewBoardRepository creates a new BoardRepository.
func NewBoardRepository(db db) *BoardRepository {
	return &BoardRepository{db: db}
}

// Get retrieves a board by ID.
func (r *BoardRepository) Get(ctx context.Context, id ulid.ULID) (*board.Board, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, title, description, owner_id, created_at, updated_at
		FROM boards WHERE id = $1
	`, id.String())
	b, err := scanBoardRow(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("BOARD_NOT_FOUND").With("id", id.String()).Wrap(board.ErrNotFound)
	}
	if err != nil {
		return nil, oops.With("operation", "get board").With("id", id.String()).Wrap(err)
	}
	return b, nil
}

// Create persists a new board.
// Callers must validate the board before calling this method.
func (r *BoardRepository) Create(ctx context.Context, b *board.Board) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO boards (id, title, description, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, b.ID.String(), b.Title, b.Description, b.OwnerID.String(), b.CreatedAt, b.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return oops.Code("BOARD_OWNER_NOT_FOUND").
				With("owner_id", b.OwnerID.String()).
				Wrap(board.ErrNotFound)
		}
		return oops.With("operation", "create board").With("id", b.ID.String()).Wrap(err)
	}
	return nil
}

// Update modifies an existing board.
// Callers must validate the board before calling this method.
func (r *BoardRepository) Update(ctx context.Context, b *board.Board) error {
	result, err := r.db.Exec(ctx, `
		UPDATE boards SET title = $2, description = $3, updated_at = $4
		WHERE id = $1
	`, b.ID.String(), b.Title, b.Description, b.UpdatedAt)
	if err != nil {
		return oops.With("operation", "update board").With("id", b.ID.String()).Wrap(err)
	}
	if result.RowsAffected() == 0 {
		return oops.Code("BOARD_NOT_FOUND").With("id", b.ID.String()).Wrap(board.ErrNotFound)
	}
	return nil
}

// Delete removes a board by ID. Lists and cards underneath go with it via
// ON DELETE CASCADE, in the same statement.
func (r *BoardRepository) Delete(ctx context.Context, id ulid.ULID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM boards WHERE id = $1`, id.String())
	if err != nil {
		return oops.With("operation", "delete board").With("id", id.String()).Wrap(err)
	}
	if result.RowsAffected() == 0 {
		return oops.Code("BOARD_NOT_FOUND").With("id", id.String()).Wrap(board.ErrNotFound)
	}
	return nil
}

// ListByOwner returns all boards owned by a user.
func (r *BoardRepository) ListByOwner(ctx context.Context, ownerID ulid.ULID) ([]*board.Board, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, description, owner_id, created_at, updated_at
		FROM boards WHERE owner_id = $1 ORDER BY created_at DESC
	`, ownerID.String())
	if err != nil {
		return nil, oops.With("operation", "list boards by owner").With("owner_id", ownerID.String()).Wrap(err)
	}
	defer rows.Close()

	return scanBoards(rows)
}

// scanBoardRow scans a single board from a row.
func scanBoardRow(row pgx.Row) (*board.Board, error) {
	var b board.Board
	var idStr, ownerStr string

	err := row.Scan(&idStr, &b.Title, &b.Description, &ownerStr, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := parseBoardIDs(&b, idStr, ownerStr); err != nil {
		return nil, err
	}
	return &b, nil
}

func parseBoardIDs(b *board.Board, idStr, ownerStr string) error {
	var err error
	b.ID, err = ulid.Parse(idStr)
	if err != nil {
		return oops.With("operation", "parse board id").With("id", idStr).Wrap(err)
	}
	b.OwnerID, err = ulid.Parse(ownerStr)
	if err != nil {
		return oops.With("operation", "parse owner id").With("owner_id", ownerStr).Wrap(err)
	}
	return nil
}

func scanBoards(rows pgx.Rows) ([]*board.Board, error) {
	boards := make([]*board.Board, 0)
	for rows.Next() {
		var b board.Board
		var idStr, ownerStr string

		if err := rows.Scan(&idStr, &b.Title, &b.Description, &ownerStr, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, oops.With("operation", "scan board").Wrap(err)
		}
		if err := parseBoardIDs(&b, idStr, ownerStr); err != nil {
			return nil, err
		}
		boards = append(boards, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, oops.With("operation", "iterate boards").Wrap(err)
	}
	return boards, nil
}

// Compile-time interface check.
var _ board.BoardRepository = (*BoardRepository)(nil)
