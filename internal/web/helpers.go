// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stackboard Contributors

package web

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"

	"github.com/stackboard/stackboard/internal/board"
)

// respond records a successful request and renders the body. A nil body
// sends an empty response with the given status.
func (h *handler) respond(c echo.Context, resource, operation string, status int, body any) error {
	h.metrics.RequestsTotal.WithLabelValues(resource, operation, "success").Inc()
	if body == nil {
		return c.NoContent(status)
	}
	return c.JSON(status, body)
}

// fail records a failed request and renders the mapped error.
func (h *handler) fail(c echo.Context, resource, operation string, err error) error {
	status, _ := httpStatus(err)
	h.metrics.RequestsTotal.WithLabelValues(resource, operation, outcomeFor(status)).Inc()
	return h.writeError(c, err)
}

func outcomeFor(status int) string {
	if status >= http.StatusInternalServerError {
		return "server_error"
	}
	return "client_error"
}

// pathID parses the named path parameter as a ULID. Malformed values map
// to a 400 via the validation error type.
func pathID(c echo.Context, name string) (ulid.ULID, error) {
	return parseULID(c.Param(name), name)
}

func parseULID(value, field string) (ulid.ULID, error) {
	id, err := ulid.Parse(value)
	if err != nil {
		return ulid.ULID{}, &board.ValidationError{Field: field, Message: "must be a valid ULID"}
	}
	return id, nil
}

// errBadBody is returned when the request body fails to bind.
var errBadBody = &board.ValidationError{Field: "body", Message: "must be valid JSON"}
