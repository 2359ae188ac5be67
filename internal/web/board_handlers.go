// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stackboard Contributors

package web

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stackboard/stackboard/internal/board"
)

func (h *handler) createBoard(c echo.Context) error {
	var req boardCreateRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, "board", "create", errBadBody)
	}

	b, err := h.boards.CreateBoard(c.Request().Context(), principal(c).ID, req.Title, req.Description)
	if err != nil {
		return h.fail(c, "board", "create", err)
	}
	return h.respond(c, "board", "create", http.StatusCreated, toBoardResponse(b))
}

func (h *handler) getBoard(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, "board", "get", err)
	}
	b, err := h.boards.GetBoard(c.Request().Context(), principal(c).ID, id)
	if err != nil {
		return h.fail(c, "board", "get", err)
	}
	return h.respond(c, "board", "get", http.StatusOK, toBoardResponse(b))
}

// listBoards returns the boards owned by the user in the path. Only that
// user may ask; the guard turns anyone else away.
func (h *handler) listBoards(c echo.Context) error {
	ownerID, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, "board", "list", err)
	}
	boards, err := h.boards.ListBoards(c.Request().Context(), principal(c).ID, ownerID)
	if err != nil {
		return h.fail(c, "board", "list", err)
	}
	return h.respond(c, "board", "list", http.StatusOK, toBoardResponses(boards))
}

func (h *handler) updateBoard(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, "board", "update", err)
	}
	var req boardUpdateRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, "board", "update", errBadBody)
	}

	patch := board.BoardPatch{Title: req.Title, Description: req.Description}
	b, err := h.boards.UpdateBoard(c.Request().Context(), principal(c).ID, id, patch)
	if err != nil {
		return h.fail(c, "board", "update", err)
	}
	return h.respond(c, "board", "update", http.StatusOK, toBoardResponse(b))
}

// deleteBoard removes the board with its lists and cards, returning the
// deleted snapshot.
func (h *handler) deleteBoard(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, "board", "delete", err)
	}
	b, err := h.boards.DeleteBoard(c.Request().Context(), principal(c).ID, id)
	if err != nil {
		return h.fail(c, "board", "delete", err)
	}
	return h.respond(c, "board", "delete", http.StatusOK, toBoardResponse(b))
}
