// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stackboard Contributors

package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/samber/oops"

	"github.com/stackboard/stackboard/internal/auth"
	"github.com/stackboard/stackboard/internal/board"
	"github.com/stackboard/stackboard/pkg/errutil"
)

// errorResponse is the uniform error body for every non-2xx response.
type errorResponse struct {
	Message string `json:"message"`
}

// httpStatus maps a domain error to a status code and client-safe message.
// The order matters: sentinel matches first, validation second, then the
// catch-all. Unrecognized errors become an opaque 500 so internal detail
// never reaches the client.
func httpStatus(err error) (int, string) {
	var verr *board.ValidationError

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid email or password"
	case errors.Is(err, auth.ErrUnauthenticated), errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized, "unauthenticated"
	case errors.Is(err, auth.ErrForbidden), errors.Is(err, board.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, auth.ErrNotFound), errors.Is(err, board.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, auth.ErrConflict):
		return http.StatusConflict, "username or email already registered"
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Error()
	}

	// Auth input validation carries oops codes rather than a sentinel.
	if oopsErr, ok := oops.AsOops(err); ok {
		if strings.HasPrefix(oopsErr.Code(), "AUTH_INVALID_") {
			return http.StatusBadRequest, oopsErr.Error()
		}
	}

	return http.StatusInternalServerError, "internal server error"
}

// writeError renders err as JSON and logs server-side failures. Client
// errors are the caller's problem and stay out of the error log.
func (h *handler) writeError(c echo.Context, err error) error {
	status, message := httpStatus(err)
	if status >= http.StatusInternalServerError {
		errutil.LogError(slog.Default(), "request failed", err)
	}
	return c.JSON(status, errorResponse{Message: message})
}
