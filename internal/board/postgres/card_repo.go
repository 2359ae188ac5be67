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

// CardRepository implements board.CardRepository using PostgreSQL.
type CardRepository struct {
	db db
}

// NewCardRepository creates a new CardRepository.
func NewCardRepository(db db) *CardRepository {
	return &CardRepository{db: db}
}

// Get retrieves a card by ID.
func (r *CardRepository) Get(ctx context.Context, id ulid.ULID) (*board.Card, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, title, description, list_id, position, due_date
		FROM cards WHERE id = $1
	`, id.String())
	c, err := scanCardRow(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("CARD_NOT_FOUND").With("id", id.String()).Wrap(board.ErrNotFound)
	}
	if err != nil {
		return nil, oops.With("operation", "get card").With("id", id.String()).Wrap(err)
	}
	return c, nil
}

// Create persists a new card.
// Callers must validate the card before calling this method.
func (r *CardRepository) Create(ctx context.Context, c *board.Card) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO cards (id, title, description, list_id, position, due_date)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, c.ID.String(), c.Title, c.Description, c.ListID.String(), c.Position, c.DueDate)
	if err != nil {
		if isForeignKeyViolation(err) {
			return oops.Code("CARD_LIST_NOT_FOUND").
				With("list_id", c.ListID.String()).
				Wrap(board.ErrNotFound)
		}
		return oops.With("operation", "create card").With("id", c.ID.String()).Wrap(err)
	}
	return nil
}

// Update modifies an existing card.
func (r *CardRepository) Update(ctx context.Context, c *board.Card) error {
	result, err := r.db.Exec(ctx, `
		UPDATE cards SET title = $2, description = $3, position = $4, due_date = $5
		WHERE id = $1
	`, c.ID.String(), c.Title, c.Description, c.Position, c.DueDate)
	if err != nil {
		return oops.With("operation", "update card").With("id", c.ID.String()).Wrap(err)
	}
	if result.RowsAffected() == 0 {
		return oops.Code("CARD_NOT_FOUND").With("id", c.ID.String()).Wrap(board.ErrNotFound)
	}
	return nil
}

// Delete removes a card by ID.
func (r *CardRepository) Delete(ctx context.Context, id ulid.ULID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM cards WHERE id = $1`, id.String())
	if err != nil {
		return oops.With("operation", "delete card").With("id", id.String()).Wrap(err)
	}
	if result.RowsAffected() == 0 {
		return oops.Code("CARD_NOT_FOUND").With("id", id.String()).Wrap(board.ErrNotFound)
	}
	return nil
}

// ListByList returns all cards on a list.
func (r *CardRepository) ListByList(ctx context.Context, listID ulid.ULID) ([]*board.Card, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, description, list_id, position, due_date
		FROM cards WHERE list_id = $1 ORDER BY position, id
	`, listID.String())
	if err != nil {
		return nil, oops.With("operation", "list cards by list").With("list_id", listID.String()).Wrap(err)
	}
	defer rows.Close()

	cards := make([]*board.Card, 0)
	for rows.Next() {
		var c board.Card
		var idStr, listStr string
		if err := rows.Scan(&idStr, &c.Title, &c.Description, &listStr, &c.Position, &c.DueDate); err != nil {
			return nil, oops.With("operation", "scan card").Wrap(err)
		}
		if err := parseCardIDs(&c, idStr, listStr); err != nil {
			return nil, err
		}
		cards = append(cards, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, oops.With("operation", "iterate cards").Wrap(err)
	}
	return cards, nil
}

// scanCardRow scans a single card from a row.
func scanCardRow(row pgx.Row) (*board.Card, error) {
	var c board.Card
	var idStr, listStr string

	err := row.Scan(&idStr, &c.Title, &c.Description, &listStr, &c.Position, &c.DueDate)
	if err != nil {
		return nil, err
	}
	if err := parseCardIDs(&c, idStr, listStr); err != nil {
		return nil, err
	}
	return &c, nil
}

func parseCardIDs(c *board.Card, idStr, listStr string) error {
	var err error
	c.ID, err = ulid.Parse(idStr)
	if err != nil {
		return oops.With("operation", "parse card id").With("id", idStr).Wrap(err)
	}
	c.ListID, err = ulid.Parse(listStr)
	if err != nil {
		return oops.With("operation", "parse list id").With("list_id", listStr).Wrap(err)
	}
	return nil
}

// Compile-time interface check.
var _ board.CardRepository = (*CardRepository)(nil)
