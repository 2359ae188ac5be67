// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stackboard Contributors

package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stackboard/stackboard/internal/auth"
	"github.com/stackboard/stackboard/pkg/errutil"
)

// mockUserRepository is a mock for auth.UserRepository.
type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *auth.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id ulid.ULID) (*auth.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.User), args.Error(1)
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*auth.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.User), args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.User), args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, user *auth.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, id ulid.ULID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestService(repo auth.UserRepository) *auth.Service {
	issuer, err := auth.NewTokenIssuer([]byte("test-secret"))
	if err != nil {
		panic(err)
	}
	return auth.NewService(repo, auth.NewBcryptHasher(), issuer)
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user with hashed password", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc := newTestService(repo)
		repo.On("Create", ctx, mock.AnythingOfType("*auth.User")).Return(nil)

		user, err := svc.Register(ctx, "alice", "alice@example.com", "s3cret-pass")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "alice", user.Username)
		assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
		assert.True(t, auth.NewBcryptHasher().Verify("s3cret-pass", user.PasswordHash))

		repo.AssertExpectations(t)
	})

	t.Run("rejects invalid username before touching the repo", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc := newTestService(repo)

		user, err := svc.Register(ctx, "1alice", "alice@example.com", "s3cret-pass")
		assert.Nil(t, user)
		require.Error(t, err)
		errutil.AssertErrorCode(t, err, "AUTH_INVALID_USERNAME")
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("rejects short password", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc := newTestService(repo)

		_, err := svc.Register(ctx, "alice", "alice@example.com", "short")
		require.Error(t, err)
		errutil.AssertErrorCode(t, err, "AUTH_INVALID_PASSWORD")
	})

	t.Run("passes duplicate through as conflict", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc := newTestService(repo)
		repo.On("Create", ctx, mock.AnythingOfType("*auth.User")).Return(auth.ErrConflict)

		_, err := svc.Register(ctx, "alice", "alice@example.com", "s3cret-pass")
		require.Error(t, err)
		assert.True(t, errors.Is(err, auth.ErrConflict))
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	hasher := auth.NewBcryptHasher()

	hash, err := hasher.Hash("s3cret-pass")
	require.NoError(t, err)
	stored := &auth.User{
		ID:           ulid.Make(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: hash,
	}

	t.Run("returns token for valid credentials", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc := newTestService(repo)
		repo.On("GetByEmail", ctx, "alice@example.com").Return(stored, nil)

		token, user, err := svc.Login(ctx, "alice@example.com", "s3cret-pass")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, stored.ID, user.ID)
	})

	t.Run("wrong password fails with invalid credentials", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc := newTestService(repo)
		repo.On("GetByEmail", ctx, "alice@example.com").Return(stored, nil)

		_, _, err := svc.Login(ctx, "alice@example.com", "wrong-pass")
		require.Error(t, err)
		assert.True(t, errors.Is(err, auth.ErrInvalidCredentials))
	})

	t.Run("unknown email fails identically", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc := newTestService(repo)
		repo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, auth.ErrNotFound)

		_, _, err := svc.Login(ctx, "nobody@example.com", "s3cret-pass")
		require.Error(t, err)
		assert.True(t, errors.Is(err, auth.ErrInvalidCredentials))
	})
}

func TestService_Resolve(t *testing.T) {
	ctx := context.Background()
	stored := &auth.User{ID: ulid.Make(), Username: "alice", Email: "alice@example.com"}

	t.Run("maps valid token to its user", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc := newTestService(repo)
		repo.On("GetByEmail", ctx, "alice@example.com").Return(stored, nil)

		issuer, err := auth.NewTokenIssuer([]byte("test-secret"))
		require.NoError(t, err)
		token, err := issuer.Issue("alice@example.com", auth.TokenTTL)
		require.NoError(t, err)

		user, err := svc.Resolve(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, stored.ID, user.ID)
	})

	t.Run("malformed token is unauthenticated", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc := newTestService(repo)

		_, err := svc.Resolve(ctx, "garbage")
		require.Error(t, err)
		assert.True(t, errors.Is(err, auth.ErrUnauthenticated))
	})

	t.Run("token for deleted user is unauthenticated", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc := newTestService(repo)
		repo.On("GetByEmail", ctx, "gone@example.com").Return(nil, auth.ErrNotFound)

		issuer, err := auth.NewTokenIssuer([]byte("test-secret"))
		require.NoError(t, err)
		token, err := issuer.Issue("gone@example.com", auth.TokenTTL)
		require.NoError(t, err)

		_, err = svc.Resolve(ctx, token)
		require.Error(t, err)
		assert.True(t, errors.Is(err, auth.ErrUnauthenticated))
	})
}

func TestService_UpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("owner updates email", func(t *testing.T) {
		stored := &auth.User{ID: ulid.Make(), Username: "alice", Email: "alice@example.com"}
		repo := new(mockUserRepository)
		svc := newTestService(repo)
		repo.On("GetByID", ctx, stored.ID).Return(stored, nil)
		repo.On("Update", ctx, mock.AnythingOfType("*auth.User")).Return(nil)

		newEmail := "alice@new.example.com"
		user, err := svc.UpdateUser(ctx, stored, stored.ID, auth.UserPatch{Email: &newEmail})
		require.NoError(t, err)
		assert.Equal(t, newEmail, user.Email)
		repo.AssertExpectations(t)
	})

	t.Run("empty patch leaves user unchanged without writing", func(t *testing.T) {
		stored := &auth.User{ID: ulid.Make(), Username: "alice", Email: "alice@example.com"}
		repo := new(mockUserRepository)
		svc := newTestService(repo)
		repo.On("GetByID", ctx, stored.ID).Return(stored, nil)

		user, err := svc.UpdateUser(ctx, stored, stored.ID, auth.UserPatch{})
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
		repo.AssertNotCalled(t, "Update")
	})

	t.Run("updating someone else is forbidden", func(t *testing.T) {
		principal := &auth.User{ID: ulid.Make(), Username: "alice"}
		repo := new(mockUserRepository)
		svc := newTestService(repo)

		otherID := ulid.Make()
		newEmail := "intruder@example.com"
		_, err := svc.UpdateUser(ctx, principal, otherID, auth.UserPatch{Email: &newEmail})
		require.Error(t, err)
		assert.True(t, errors.Is(err, auth.ErrForbidden))
		repo.AssertNotCalled(t, "GetByID")
	})

	t.Run("password update re-hashes", func(t *testing.T) {
		stored := &auth.User{ID: ulid.Make(), Username: "alice", Email: "alice@example.com"}
		repo := new(mockUserRepository)
		svc := newTestService(repo)
		repo.On("GetByID", ctx, stored.ID).Return(stored, nil)
		repo.On("Update", ctx, mock.AnythingOfType("*auth.User")).Return(nil)

		newPassword := "brand-new-pass"
		user, err := svc.UpdateUser(ctx, stored, stored.ID, auth.UserPatch{Password: &newPassword})
		require.NoError(t, err)
		assert.NotEqual(t, newPassword, user.PasswordHash)
		assert.True(t, auth.NewBcryptHasher().Verify(newPassword, user.PasswordHash))
	})
}

func TestService_DeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deletes own account", func(t *testing.T) {
		principal := &auth.User{ID: ulid.Make(), Username: "alice"}
		repo := new(mockUserRepository)
		svc := newTestService(repo)
		repo.On("Delete", ctx, principal.ID).Return(nil)

		require.NoError(t, svc.DeleteUser(ctx, principal, principal.ID))
		repo.AssertExpectations(t)
	})

	t.Run("deleting someone else is forbidden", func(t *testing.T) {
		principal := &auth.User{ID: ulid.Make(), Username: "alice"}
		repo := new(mockUserRepository)
		svc := newTestService(repo)

		err := svc.DeleteUser(ctx, principal, ulid.Make())
		require.Error(t, err)
		assert.True(t, errors.Is(err, auth.ErrForbidden))
		repo.AssertNotCalled(t, "Delete")
	})
}
