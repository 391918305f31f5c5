package service

import (
	"github.com/MKhiriev/go-measure-gateway/internal/cache"
	"github.com/MKhiriev/go-measure-gateway/internal/config"
	"github.com/MKhiriev/go-measure-gateway/internal/engine"
	"github.com/MKhiriev/go-measure-gateway/internal/logger"
	"github.com/MKhiriev/go-measure-gateway/internal/store"
)

type Services struct {
	AuthService        AuthService
	MeasurementService MeasurementService
	AppInfoService     AppInfoService
}

func NewServices(storages *store.Storages, eng engine.Engine, kv cache.Cache, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:        NewAuthService(storages.UserRepository, cfg.Auth, logger),
		MeasurementService: NewMeasurementService(eng, kv, cfg.Cache, logger),
		AppInfoService:     NewAppInfoService(cfg.Engine, logger),
	}
}
