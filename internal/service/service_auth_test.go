// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-measure-gateway/internal/config"
	"github.com/MKhiriev/go-measure-gateway/internal/logger"
	"github.com/MKhiriev/go-measure-gateway/internal/store"
	"github.com/MKhiriev/go-measure-gateway/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByLoginFn func(ctx context.Context, user models.User) (models.User, error)
	findUserByIDFn    func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByLogin(ctx context.Context, user models.User) (models.User, error) {
	if m.findUserByLoginFn != nil {
		return m.findUserByLoginFn(ctx, user)
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findUserByIDFn != nil {
		return m.findUserByIDFn(ctx, userID)
	}
	return models.User{}, store.ErrNoUserWasFound
}

func testAuthConfig() config.Auth {
	return config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "measure-gateway",
		TokenDuration: 30 * time.Minute,
	}
}

func TestRegisterUser_HashesAndStoresCredentials(t *testing.T) {
	var stored models.User
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			stored = user
			user.UserID = 7
			return user, nil
		},
	}
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	registered, err := svc.RegisterUser(context.Background(), models.User{
		Login:    "alice",
		Email:    "a@x.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), registered.UserID)
	assert.Empty(t, stored.Password, "plain-text password must not reach storage")
	assert.NotEmpty(t, stored.AuthHash)
	assert.NotEmpty(t, stored.AuthSalt)
	assert.NotEqual(t, "s3cret", stored.AuthHash)
	assert.True(t, stored.Active)
}

func TestRegisterUser_SaltsArePerUser(t *testing.T) {
	var salts []string
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			salts = append(salts, user.AuthSalt)
			return user, nil
		},
	}
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "a", Password: "same"})
	require.NoError(t, err)
	_, err = svc.RegisterUser(context.Background(), models.User{Login: "b", Password: "same"})
	require.NoError(t, err)

	require.Len(t, salts, 2)
	assert.NotEqual(t, salts[0], salts[1])
}

func TestRegisterUser_RejectsEmptyCredentials(t *testing.T) {
	svc := NewAuthService(&mockUserRepository{}, testAuthConfig(), logger.Nop())

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "alice"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.RegisterUser(context.Background(), models.User{Password: "s3cret"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRegisterUser_PropagatesDuplicateLogin(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrLoginAlreadyExists
		},
	}
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "alice", Password: "x"})
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

// registerAndCapture registers a user through the real hashing path and
// returns the record as it would sit in storage.
func registerAndCapture(t *testing.T, login, password string) models.User {
	t.Helper()
	var stored models.User
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			stored = user
			stored.UserID = 1
			return stored, nil
		},
	}
	registerSvc := NewAuthService(repo, testAuthConfig(), logger.Nop())
	_, err := registerSvc.RegisterUser(context.Background(), models.User{Login: login, Password: password})
	require.NoError(t, err)
	return stored
}

func TestLogin_Succeeds(t *testing.T) {
	stored := registerAndCapture(t, "alice", "s3cret")
	stored.UserID = 1

	repo := &mockUserRepository{
		findUserByLoginFn: func(_ context.Context, _ models.User) (models.User, error) {
			return stored, nil
		},
	}
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	user, err := svc.Login(context.Background(), models.User{Login: "alice", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Login)
}

func TestLogin_WrongPasswordIsOpaque(t *testing.T) {
	stored := registerAndCapture(t, "alice", "s3cret")

	repo := &mockUserRepository{
		findUserByLoginFn: func(_ context.Context, _ models.User) (models.User, error) {
			return stored, nil
		},
	}
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	_, err := svc.Login(context.Background(), models.User{Login: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUserIsOpaque(t *testing.T) {
	repo := &mockUserRepository{
		findUserByLoginFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	_, err := svc.Login(context.Background(), models.User{Login: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials,
		"unknown login and wrong password must be indistinguishable")
}

func TestLogin_DeactivatedAccountIsOpaque(t *testing.T) {
	stored := registerAndCapture(t, "alice", "s3cret")
	stored.Active = false

	repo := &mockUserRepository{
		findUserByLoginFn: func(_ context.Context, _ models.User) (models.User, error) {
			return stored, nil
		},
	}
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	_, err := svc.Login(context.Background(), models.User{Login: "alice", Password: "s3cret"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_StorageFailureIsNotOpaque(t *testing.T) {
	repo := &mockUserRepository{
		findUserByLoginFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, errors.New("connection refused")
		},
	}
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	_, err := svc.Login(context.Background(), models.User{Login: "alice", Password: "s3cret"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials,
		"infrastructure failures must not masquerade as bad credentials")
}

func TestCreateAndParseToken_RoundTrip(t *testing.T) {
	svc := NewAuthService(&mockUserRepository{}, testAuthConfig(), logger.Nop())
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestParseToken_RejectsForeignSignature(t *testing.T) {
	issuing := NewAuthService(&mockUserRepository{}, config.Auth{
		TokenSignKey:  "other-key",
		TokenIssuer:   "measure-gateway",
		TokenDuration: time.Minute,
	}, logger.Nop())
	verifying := NewAuthService(&mockUserRepository{}, testAuthConfig(), logger.Nop())
	ctx := context.Background()

	token, err := issuing.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)

	_, err = verifying.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseToken_RejectsGarbage(t *testing.T) {
	svc := NewAuthService(&mockUserRepository{}, testAuthConfig(), logger.Nop())

	_, err := svc.ParseToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
