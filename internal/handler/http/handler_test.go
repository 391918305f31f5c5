// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-measure-gateway/internal/config"
	"github.com/MKhiriev/go-measure-gateway/internal/limiter"
	"github.com/MKhiriev/go-measure-gateway/internal/logger"
	"github.com/MKhiriev/go-measure-gateway/internal/service"
	"github.com/MKhiriev/go-measure-gateway/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	getUserByIDFn  func(ctx context.Context, userID int64) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	if m.registerUserFn != nil {
		return m.registerUserFn(ctx, user)
	}
	user.UserID = 1
	return user, nil
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, user)
	}
	return models.User{}, service.ErrInvalidCredentials
}

func (m *mockAuthService) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(ctx, userID)
	}
	return models.User{UserID: userID, Login: "alice", Active: true}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "stub-token", UserID: user.UserID}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	if tokenString == "good-token" {
		return models.Token{SignedString: tokenString, UserID: 1}, nil
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

// ─────────────────────────────────────────────
// Mock MeasurementService
// ─────────────────────────────────────────────

type mockMeasurementService struct {
	analyzeFn      func(ctx context.Context, request models.MeasurementRequest) (models.MeasurementResult, error)
	engineReadyFn  func(ctx context.Context) bool
	cacheHealthyFn func(ctx context.Context) bool

	analyzeCalls int
}

func (m *mockMeasurementService) Analyze(ctx context.Context, request models.MeasurementRequest) (models.MeasurementResult, error) {
	m.analyzeCalls++
	if m.analyzeFn != nil {
		return m.analyzeFn(ctx, request)
	}
	return models.MeasurementResult{
		Success:      true,
		Measurements: map[string]float64{"height": request.Height},
		ModelVersion: "1.0.0",
		Timestamp:    models.UTCTimestamp(time.Now()),
	}, nil
}

func (m *mockMeasurementService) EngineReady(ctx context.Context) bool {
	if m.engineReadyFn != nil {
		return m.engineReadyFn(ctx)
	}
	return true
}

func (m *mockMeasurementService) CacheHealthy(ctx context.Context) bool {
	if m.cacheHealthyFn != nil {
		return m.cacheHealthyFn(ctx)
	}
	return true
}

// ─────────────────────────────────────────────
// Mock AppInfoService
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func testRateLimitConfig() config.RateLimit {
	return config.RateLimit{
		Requests: 100,
		Window:   time.Minute,
		Analyze:  config.ActionPolicy{Requests: 100, Window: time.Minute},
		AnalyzeBase64: config.ActionPolicy{
			Requests: 100,
			Window:   time.Minute,
		},
	}
}

// newTestHandler builds a Handler wired to the given service mocks and an
// in-process rate limiter.
func newTestHandler(t *testing.T, auth service.AuthService, measurements service.MeasurementService) *Handler {
	t.Helper()
	if auth == nil {
		auth = &mockAuthService{}
	}
	if measurements == nil {
		measurements = &mockMeasurementService{}
	}
	svcs := &service.Services{
		AuthService:        auth,
		MeasurementService: measurements,
		AppInfoService:     &mockAppInfoService{version: "1.0.0"},
	}
	return NewHandler(svcs, limiter.NewMemoryLimiter(), testRateLimitConfig(), logger.Nop())
}

// userBody serialises a models.User to a JSON request body string.
func userBody(t *testing.T, u models.User) string {
	t.Helper()
	b, err := json.Marshal(u)
	require.NoError(t, err)
	return string(b)
}

// decodeBody unmarshals a JSON response body into dest.
func decodeBody(t *testing.T, body []byte, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(body, dest))
}

var errBoom = errors.New("boom")
