// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stackboard Contributors

package web

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stackboard/stackboard/internal/board"
)

// createList adds a list to a board the caller owns. A missing board reads
// as 404, someone else's board as 403.
func (h *handler) createList(c echo.Context) error {
	var req listCreateRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, "list", "create", errBadBody)
	}
	boardID, err := parseULID(req.BoardID, "board_id")
	if err != nil {
		return h.fail(c, "list", "create", err)
	}

	l, err := h.boards.CreateList(c.Request().Context(), principal(c).ID, boardID, req.Title)
	if err != nil {
		return h.fail(c, "list", "create", err)
	}
	return h.respond(c, "list", "create", http.StatusCreated, toListResponse(l))
}

func (h *handler) getList(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, "list", "get", err)
	}
	l, err := h.boards.GetList(c.Request().Context(), principal(c).ID, id)
	if err != nil {
		return h.fail(c, "list", "get", err)
	}
	return h.respond(c, "list", "get", http.StatusOK, toListResponse(l))
}

func (h *handler) listsByBoard(c echo.Context) error {
	boardID, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, "list", "list", err)
	}
	lists, err := h.boards.ListsByBoard(c.Request().Context(), principal(c).ID, boardID)
	if err != nil {
		return h.fail(c, "list", "list", err)
	}
	return h.respond(c, "list", "list", http.StatusOK, toListResponses(lists))
}

func (h *handler) updateList(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, "list", "update", err)
	}
	var req listUpdateRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, "list", "update", errBadBody)
	}

	l, err := h.boards.UpdateList(c.Request().Context(), principal(c).ID, id, board.ListPatch{Title: req.Title})
	if err != nil {
		return h.fail(c, "list", "update", err)
	}
	return h.respond(c, "list", "update", http.StatusOK, toListResponse(l))
}

func (h *handler) deleteList(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, "list", "delete", err)
	}
	l, err := h.boards.DeleteList(c.Request().Context(), principal(c).ID, id)
	if err != nil {
		return h.fail(c, "list", "delete", err)
	}
	return h.respond(c, "list", "delete", http.StatusOK, toListResponse(l))
}
