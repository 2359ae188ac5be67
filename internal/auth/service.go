// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stackboard Contributors

package auth

import (
	"context"
	"errors"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
)

// Service provides account and authentication operations.
type Service struct {
	users  UserRepository
	hasher PasswordHasher
	tokens *TokenIssuer
}

// NewService creates a new Service.
func NewService(users UserRepository, hasher PasswordHasher, tokens *TokenIssuer) *Service {
	return &Service{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// dummyPasswordHash is used when a user doesn't exist to prevent timing
// attacks: password verification still runs so response time stays
// consistent. This is NOT a real credential.
//
//nolint:gosec // G101: intentionally fake hash for timing attack prevention, not a credential.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Register creates a new account and returns it. The password is validated
// and hashed here; the repository's unique constraints are the authority on
// duplicate usernames and emails (ErrConflict).
func (s *Service) Register(ctx context.Context, username, email, password string) (*User, error) {
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, oops.Code("AUTH_REGISTER_FAILED").
			With("operation", "hash password").
			Wrap(err)
	}

	user := NewUser(username, email, hash)
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, ErrConflict) {
			return nil, err
		}
		return nil, oops.Code("AUTH_REGISTER_FAILED").
			With("operation", "create user").
			Wrap(err)
	}
	return user, nil
}

// Login authenticates by email and password and returns a bearer token with
// the user it belongs to. Unknown email and wrong password produce the same
// ErrInvalidCredentials, and verification runs either way so response time
// does not reveal which it was.
func (s *Service) Login(ctx context.Context, email, password string) (string, *User, error) {
	user, lookupErr := s.users.GetByEmail(ctx, email)

	targetHash := dummyPasswordHash
	userExists := false
	if lookupErr != nil {
		if !errors.Is(lookupErr, ErrNotFound) {
			return "", nil, oops.Code("AUTH_LOGIN_FAILED").
				With("operation", "get user by email").
				Wrap(lookupErr)
		}
	} else {
		targetHash = user.PasswordHash
		userExists = true
	}

	valid := s.hasher.Verify(password, targetHash)
	if !userExists || !valid {
		return "", nil, oops.Code("AUTH_INVALID_CREDENTIALS").Wrap(ErrInvalidCredentials)
	}

	token, err := s.tokens.Issue(user.Email, TokenTTL)
	if err != nil {
		return "", nil, oops.Code("AUTH_LOGIN_FAILED").
			With("operation", "issue token").
			Wrap(err)
	}
	return token, user, nil
}

// Resolve maps a presented bearer token to the authenticated user. Any
// failure — malformed or expired token, or no user matching the subject —
// yields ErrUnauthenticated. This is the sole gate protected operations
// pass through before authorization.
func (s *Service) Resolve(ctx context.Context, token string) (*User, error) {
	subject, err := s.tokens.Parse(token)
	if err != nil {
		return nil, oops.Code("AUTH_UNAUTHENTICATED").
			With("operation", "parse token").
			Wrap(ErrUnauthenticated)
	}

	user, err := s.users.GetByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, oops.Code("AUTH_UNAUTHENTICATED").
				With("operation", "lookup subject").
				Wrap(ErrUnauthenticated)
		}
		return nil, oops.Code("AUTH_RESOLVE_FAILED").
			With("operation", "get user by email").
			Wrap(err)
	}
	return user, nil
}

// GetUser retrieves a user by ID.
func (s *Service) GetUser(ctx context.Context, id ulid.ULID) (*User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, oops.Wrapf(err, "get user %s", id)
	}
	return user, nil
}

// GetUserByUsername retrieves a user by username.
func (s *Service) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, oops.Wrapf(err, "get user by username %q", username)
	}
	return user, nil
}

// UpdateUser applies a partial update to the principal's own account.
// Targeting any other account fails with ErrForbidden before the target is
// even read.
func (s *Service) UpdateUser(ctx context.Context, principal *User, id ulid.ULID, patch UserPatch) (*User, error) {
	if principal.ID != id {
		return nil, oops.Code("AUTH_FORBIDDEN").With("user_id", id.String()).Wrap(ErrForbidden)
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, oops.Wrapf(err, "get user %s", id)
	}
	if patch.IsEmpty() {
		return user, nil
	}

	if patch.Email != nil {
		if err := ValidateEmail(*patch.Email); err != nil {
			return nil, err
		}
		user.Email = *patch.Email
	}
	if patch.Password != nil {
		if err := ValidatePassword(*patch.Password); err != nil {
			return nil, err
		}
		hash, err := s.hasher.Hash(*patch.Password)
		if err != nil {
			return nil, oops.Code("AUTH_UPDATE_FAILED").
				With("operation", "hash password").
				Wrap(err)
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, oops.Wrapf(err, "update user %s", id)
	}
	return user, nil
}

// DeleteUser removes the principal's own account. All owned boards, lists,
// and cards go with it in the same transaction (cascading foreign keys).
func (s *Service) DeleteUser(ctx context.Context, principal *User, id ulid.ULID) error {
	if principal.ID != id {
		return oops.Code("AUTH_FORBIDDEN").With("user_id", id.String()).Wrap(ErrForbidden)
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return oops.Wrapf(err, "delete user %s", id)
	}
	return nil
}
