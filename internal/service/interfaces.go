package service

import (
	"context"

	"github.com/MKhiriev/go-measure-gateway/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type MeasurementService interface {
	// Analyze runs the full measurement pipeline for one photo and height
	// and returns the result envelope. Client-caused failures (bad image,
	// engine not ready) are reported inside the envelope together with an
	// error; infrastructure failures only as an error.
	Analyze(ctx context.Context, request models.MeasurementRequest) (models.MeasurementResult, error)

	// EngineReady reports whether the engine has completed warm-up.
	EngineReady(ctx context.Context) bool

	// CacheHealthy reports whether the result cache answers probes.
	CacheHealthy(ctx context.Context) bool
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
