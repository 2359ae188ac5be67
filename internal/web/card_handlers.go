// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stackboard Contributors

package web

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stackboard/stackboard/internal/board"
)

// createCard adds a card to a list whose board the caller owns. The claimed
// list is authorized before anything is written.
func (h *handler) createCard(c echo.Context) error {
	var req cardCreateRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, "card", "create", errBadBody)
	}
	listID, err := parseULID(req.ListID, "list_id")
	if err != nil {
		return h.fail(c, "card", "create", err)
	}

	card, err := h.boards.CreateCard(c.Request().Context(), principal(c).ID, listID,
		req.Title, req.Description, req.Position, req.DueDate)
	if err != nil {
		return h.fail(c, "card", "create", err)
	}
	return h.respond(c, "card", "create", http.StatusCreated, toCardResponse(card))
}

func (h *handler) getCard(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, "card", "get", err)
	}
	card, err := h.boards.GetCard(c.Request().Context(), principal(c).ID, id)
	if err != nil {
		return h.fail(c, "card", "get", err)
	}
	return h.respond(c, "card", "get", http.StatusOK, toCardResponse(card))
}

func (h *handler) cardsByList(c echo.Context) error {
	listID, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, "card", "list", err)
	}
	cards, err := h.boards.CardsByList(c.Request().Context(), principal(c).ID, listID)
	if err != nil {
		return h.fail(c, "card", "list", err)
	}
	return h.respond(c, "card", "list", http.StatusOK, toCardResponses(cards))
}

func (h *handler) updateCard(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, "card", "update", err)
	}
	var req cardUpdateRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, "card", "update", errBadBody)
	}

	patch := board.CardPatch{
		Title:       req.Title,
		Description: req.Description,
		Position:    req.Position,
		DueDate:     req.DueDate,
	}
	card, err := h.boards.UpdateCard(c.Request().Context(), principal(c).ID, id, patch)
	if err != nil {
		return h.fail(c, "card", "update", err)
	}
	return h.respond(c, "card", "update", http.StatusOK, toCardResponse(card))
}

func (h *handler) deleteCard(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, "card", "delete", err)
	}
	card, err := h.boards.DeleteCard(c.Request().Context(), principal(c).ID, id)
	if err != nil {
		return h.fail(c, "card", "delete", err)
	}
	return h.respond(c, "card", "delete", http.StatusOK, toCardResponse(card))
}
