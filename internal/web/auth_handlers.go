// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stackboard Contributors

package web

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stackboard/stackboard/internal/auth"
)

// register creates an account. Duplicate usernames and emails come back as
// 409; input validation failures as 400.
func (h *handler) register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, "auth", "register", errBadBody)
	}

	user, err := h.auth.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return h.fail(c, "auth", "register", err)
	}
	return h.respond(c, "auth", "register", http.StatusCreated, toUserResponse(user))
}

// login exchanges email and password for a bearer token. Unknown email and
// wrong password are indistinguishable to the client.
func (h *handler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, "auth", "login", errBadBody)
	}

	token, _, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return h.fail(c, "auth", "login", err)
	}
	return h.respond(c, "auth", "login", http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   auth.TokenType,
	})
}
