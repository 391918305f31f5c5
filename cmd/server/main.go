package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-measure-gateway/internal/cache"
	"github.com/MKhiriev/go-measure-gateway/internal/config"
	"github.com/MKhiriev/go-measure-gateway/internal/engine"
	myHTTP "github.com/MKhiriev/go-measure-gateway/internal/handler/http"
	"github.com/MKhiriev/go-measure-gateway/internal/limiter"
	"github.com/MKhiriev/go-measure-gateway/internal/logger"
	"github.com/MKhiriev/go-measure-gateway/internal/server"
	"github.com/MKhiriev/go-measure-gateway/internal/service"
	"github.com/MKhiriev/go-measure-gateway/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("measure-gateway")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	kv, lim := newCacheAndLimiter(ctx, cfg.Cache, log)

	eng := engine.NewSimulated(cfg.Engine.ModelVersion, cfg.Engine.WarmupDelay, log)

	services := service.NewServices(storages, eng, kv, *cfg, log)

	handler := myHTTP.NewHandler(services, lim, cfg.RateLimit, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newCacheAndLimiter connects the shared Redis backend when configured. An
// unreachable or unconfigured Redis degrades to process-local stores, which
// is correct only for single-instance deployments.
func newCacheAndLimiter(ctx context.Context, cfg config.Cache, log *logger.Logger) (cache.Cache, limiter.Limiter) {
	if cfg.Address == "" {
		log.Warn().Msg("no redis configured, using in-memory cache and rate limiter (single-instance mode)")
		return cache.NewMemoryCache(), limiter.NewMemoryLimiter()
	}

	redisCache, err := cache.NewRedisCache(ctx, cfg.Address, cfg.Password, cfg.DB, log)
	if err != nil {
		log.Warn().Err(err).Msg("redis unreachable, falling back to in-memory cache and rate limiter")
		return cache.NewMemoryCache(), limiter.NewMemoryLimiter()
	}

	return redisCache, limiter.NewRedisLimiter(redisCache.Client(), log)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
