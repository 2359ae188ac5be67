// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stackboard Contributors

package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/samber/oops"
)

// TokenTTL is the lifetime of issued bearer tokens. Expiry is the only
// invalidation path; there is no revocation list.
const TokenTTL = 30 * time.Minute

// TokenType is the fixed type tag returned alongside issued tokens.
const TokenType = "bearer"

// TokenIssuer signs and parses bearer tokens (HS256 JWTs) using a
// process-wide secret key.
type TokenIssuer struct {
	secret []byte
}

// NewTokenIssuer creates a TokenIssuer with the given signing secret.
func NewTokenIssuer(secret []byte) (*TokenIssuer, error) {
	if len(secret) == 0 {
		return nil, oops.Code("AUTH_EMPTY_SECRET").Errorf("signing secret cannot be empty")
	}
	return &TokenIssuer{secret: secret}, nil
}

// Issue creates a signed token carrying the subject and an absolute expiry
// ttl from now.
func (i *TokenIssuer) Issue(subject string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", oops.Code("AUTH_EMPTY_SUBJECT").Errorf("token subject cannot be empty")
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", oops.Code("AUTH_TOKEN_SIGN_FAILED").Wrap(err)
	}
	return signed, nil
}

// Parse verifies a token and returns its subject. It fails with
// ErrInvalidToken if the signature is invalid, the expiry has passed, or
// the subject claim is absent.
func (i *TokenIssuer) Parse(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, oops.Code("AUTH_INVALID_TOKEN").
					Errorf("unexpected signing method %q", t.Method.Alg())
			}
			return i.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", oops.Code("AUTH_INVALID_TOKEN").With("reason", err.Error()).Wrap(ErrInvalidToken)
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", oops.Code("AUTH_INVALID_TOKEN").
			With("reason", "missing subject claim").Wrap(ErrInvalidToken)
	}
	return claims.Subject, nil
}
