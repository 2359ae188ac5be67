// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stackboard Contributors

package web

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stackboard/stackboard/internal/auth"
)

func (h *handler) getUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, "user", "get", err)
	}
	user, err := h.auth.GetUser(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, "user", "get", err)
	}
	return h.respond(c, "user", "get", http.StatusOK, toUserResponse(user))
}

func (h *handler) getUserByUsername(c echo.Context) error {
	user, err := h.auth.GetUserByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return h.fail(c, "user", "get", err)
	}
	return h.respond(c, "user", "get", http.StatusOK, toUserResponse(user))
}

// updateUser patches the account's email and/or password. Only the account
// owner may do this; anyone else gets a 403.
func (h *handler) updateUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, "user", "update", err)
	}
	var req userUpdateRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, "user", "update", errBadBody)
	}

	patch := auth.UserPatch{Email: req.Email, Password: req.Password}
	user, err := h.auth.UpdateUser(c.Request().Context(), principal(c), id, patch)
	if err != nil {
		return h.fail(c, "user", "update", err)
	}
	return h.respond(c, "user", "update", http.StatusOK, toUserResponse(user))
}

// deleteUser removes the account and, through cascading foreign keys, every
// board, list, and card it owns.
func (h *handler) deleteUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, "user", "delete", err)
	}
	if err := h.auth.DeleteUser(c.Request().Context(), principal(c), id); err != nil {
		return h.fail(c, "user", "delete", err)
	}
	return h.respond(c, "user", "delete", http.StatusNoContent, nil)
}
