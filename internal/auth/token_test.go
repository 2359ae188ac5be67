// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stackboard Contributors

package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackboard/stackboard/internal/auth"
)

func TestNewTokenIssuer(t *testing.T) {
	t.Run("rejects empty secret", func(t *testing.T) {
		_, err := auth.NewTokenIssuer(nil)
		require.Error(t, err)
	})
}

func TestTokenIssuer_IssueAndParse(t *testing.T) {
	issuer, err := auth.NewTokenIssuer([]byte("test-secret-key"))
	require.NoError(t, err)

	t.Run("round trip returns subject", func(t *testing.T) {
		token, err := issuer.Issue("alice@example.com", auth.TokenTTL)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		subject, err := issuer.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", subject)
	})

	t.Run("rejects empty subject", func(t *testing.T) {
		_, err := issuer.Issue("", auth.TokenTTL)
		require.Error(t, err)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		token, err := issuer.Issue("alice@example.com", -time.Minute)
		require.NoError(t, err)

		_, err = issuer.Parse(token)
		require.Error(t, err)
		assert.True(t, errors.Is(err, auth.ErrInvalidToken))
	})

	t.Run("rejects token signed with a different secret", func(t *testing.T) {
		other, err := auth.NewTokenIssuer([]byte("another-secret"))
		require.NoError(t, err)
		token, err := other.Issue("alice@example.com", auth.TokenTTL)
		require.NoError(t, err)

		_, err = issuer.Parse(token)
		require.Error(t, err)
		assert.True(t, errors.Is(err, auth.ErrInvalidToken))
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := issuer.Parse("definitely.not.a-jwt")
		require.Error(t, err)
		assert.True(t, errors.Is(err, auth.ErrInvalidToken))
	})

	t.Run("rejects token without subject claim", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
			SignedString([]byte("test-secret-key"))
		require.NoError(t, err)

		_, err = issuer.Parse(signed)
		require.Error(t, err)
		assert.True(t, errors.Is(err, auth.ErrInvalidToken))
	})

	t.Run("rejects unsigned token", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Subject:   "alice@example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = issuer.Parse(unsigned)
		require.Error(t, err)
		assert.True(t, errors.Is(err, auth.ErrInvalidToken))
	})
}
