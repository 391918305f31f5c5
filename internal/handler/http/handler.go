package http

import (
	"github.com/MKhiriev/go-measure-gateway/internal/config"
	"github.com/MKhiriev/go-measure-gateway/internal/limiter"
	"github.com/MKhiriev/go-measure-gateway/internal/logger"
	"github.com/MKhiriev/go-measure-gateway/internal/service"
)

type Handler struct {
	services *service.Services

	limiter       limiter.Limiter
	rateLimitConf config.RateLimit

	logger *logger.Logger
}

func NewHandler(services *service.Services, lim limiter.Limiter, rateLimitConf config.RateLimit, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		limiter:       lim,
		rateLimitConf: rateLimitConf,
		logger:        logger,
	}
}
