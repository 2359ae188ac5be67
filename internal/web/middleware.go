// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stackboard Contributors

package web

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/stackboard/stackboard/internal/auth"
)

// principalKey is the echo context key holding the authenticated *auth.User.
const principalKey = "stackboard.principal"

// requireAuth extracts the bearer token, resolves it to a user, and stores
// the user in the request context. Requests with no token, a malformed
// Authorization header, or an unresolvable token get a uniform 401.
func (h *handler) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			h.metrics.AuthFailuresTotal.WithLabelValues("missing_token").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Message: "unauthenticated"})
		}

		user, err := h.auth.Resolve(c.Request().Context(), token)
		if err != nil {
			h.metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
			return h.writeError(c, err)
		}

		c.Set(principalKey, user)
		return next(c)
	}
}

// principal returns the authenticated user placed by requireAuth. Handlers
// registered behind the middleware can rely on it being present.
func principal(c echo.Context) *auth.User {
	user, _ := c.Get(principalKey).(*auth.User)
	return user
}

// bearerToken splits an Authorization header into its token, accepting only
// the Bearer scheme (case-insensitive, per RFC 6750).
func bearerToken(header string) (string, bool) {
	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
