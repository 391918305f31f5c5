package service

import (
	"context"

	"github.com/MKhiriev/go-measure-gateway/internal/config"
	"github.com/MKhiriev/go-measure-gateway/internal/logger"
)

type appInfoService struct {
	modelVersion string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.Engine, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		modelVersion: cfg.ModelVersion,
		logger:       logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.modelVersion
}
