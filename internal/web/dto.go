// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stackboard Contributors

package web

import (
	"time"

	"github.com/stackboard/stackboard/internal/auth"
	"github.com/stackboard/stackboard/internal/board"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userUpdateRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type boardCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type boardUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type listCreateRequest struct {
	BoardID string `json:"board_id"`
	Title   string `json:"title"`
}

type listUpdateRequest struct {
	Title *string `json:"title"`
}

type cardCreateRequest struct {
	ListID      string     `json:"list_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Position    int        `json:"position"`
	DueDate     *time.Time `json:"due_date"`
}

type cardUpdateRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Position    *int       `json:"position"`
	DueDate     *time.Time `json:"due_date"`
}

// tokenResponse is the login payload. The token is a bearer JWT; clients
// present it verbatim in the Authorization header.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// userResponse is the public view of an account. The password hash never
// leaves the service.
type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type boardResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type listResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	BoardID string `json:"board_id"`
}

type cardResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ListID      string     `json:"list_id"`
	Position    int        `json:"position"`
	DueDate     *time.Time `json:"due_date"`
}

func toUserResponse(u *auth.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toBoardResponse(b *board.Board) boardResponse {
	return boardResponse{
		ID:          b.ID.String(),
		Title:       b.Title,
		Description: b.Description,
		OwnerID:     b.OwnerID.String(),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func toBoardResponses(boards []*board.Board) []boardResponse {
	out := make([]boardResponse, 0, len(boards))
	for _, b := range boards {
		out = append(out, toBoardResponse(b))
	}
	return out
}

func toListResponse(l *board.List) listResponse {
	return listResponse{
		ID:      l.ID.String(),
		Title:   l.Title,
		BoardID: l.BoardID.String(),
	}
}

func toListResponses(lists []*board.List) []listResponse {
	out := make([]listResponse, 0, len(lists))
	for _, l := range lists {
		out = append(out, toListResponse(l))
	}
	return out
}

func toCardResponse(c *board.Card) cardResponse {
	return cardResponse{
		ID:          c.ID.String(),
		Title:       c.Title,
		Description: c.Description,
		ListID:      c.ListID.String(),
		Position:    c.Position,
		DueDate:     c.DueDate,
	}
}

func toCardResponses(cards []*board.Card) []cardResponse {
	out := make([]cardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, toCardResponse(c))
	}
	return out
}
