package service

import (
	"context"
	"encoding/binary"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-measure-gateway/internal/cache"
	"github.com/MKhiriev/go-measure-gateway/internal/config"
	"github.com/MKhiriev/go-measure-gateway/internal/engine"
	"github.com/MKhiriev/go-measure-gateway/internal/imaging"
	"github.com/MKhiriev/go-measure-gateway/internal/logger"
	"github.com/MKhiriev/go-measure-gateway/internal/utils"
	"github.com/MKhiriev/go-measure-gateway/models"
)

const (
	engineReadyKey       = "engine:ready"
	measurementKeyPrefix = "cache:measurement:"
)

// cachedMeasurement is the payload memoized per (photo, height) pair.
// Timing fields are never cached: processing time always reflects the
// current call.
type cachedMeasurement struct {
	Measurements map[string]float64 `json:"measurements"`
	ModelVersion string             `json:"model_version"`
}

// measurementService orchestrates the measurement pipeline: engine warm-up,
// image normalization, result memoization and engine invocation. The cache
// is best-effort throughout; any cache failure degrades to a recompute.
type measurementService struct {
	engine         engine.Engine
	cache          cache.Cache
	resultTTL      time.Duration
	engineReadyTTL time.Duration

	logger *logger.Logger
}

// NewMeasurementService wires the orchestrator to its engine and cache.
func NewMeasurementService(eng engine.Engine, kv cache.Cache, cfg config.Cache, logger *logger.Logger) MeasurementService {
	return &measurementService{
		engine:         eng,
		cache:          kv,
		resultTTL:      cfg.ResultTTL,
		engineReadyTTL: cfg.EngineReadyTTL,
		logger:         logger,
	}
}

// Analyze runs the measurement pipeline for one request.
//
// Pipeline order is fixed: engine readiness, image normalization, cache
// lookup, engine invocation, cache store, envelope assembly. The envelope
// always carries the wall-clock duration of THIS call, even when the
// measurements came from the cache.
func (s *measurementService) Analyze(ctx context.Context, request models.MeasurementRequest) (models.MeasurementResult, error) {
	log := logger.FromContext(ctx)
	started := time.Now()

	if request.Height <= models.MinHeightCm || request.Height > models.MaxHeightCm {
		return s.failure(started, models.CodeValidationError, ErrHeightOutOfRange.Error()), ErrHeightOutOfRange
	}

	if err := s.ensureEngineReady(ctx); err != nil {
		log.Err(err).Msg("measurement engine unavailable")
		return s.failure(started, models.CodeEngineUnavailable, "measurement engine is not ready"), ErrEngineNotReady
	}

	img, err := imaging.Normalize(request.ImageData)
	if err != nil {
		log.Warn().Err(err).Msg("rejected undecodable image")
		return s.failure(started, models.CodeInvalidImage, err.Error()), fmt.Errorf("image normalization failed: %w", err)
	}

	key := measurementKey(img, request.Height)

	var cached cachedMeasurement
	if found, cacheErr := s.cache.Get(ctx, key, &cached); cacheErr != nil {
		log.Warn().Err(cacheErr).Msg("result cache lookup failed, recomputing")
	} else if found {
		log.Debug().Str("key", key).Msg("measurement cache hit")
		return s.success(started, cached.Measurements, cached.ModelVersion), nil
	}

	measurements, err := s.engine.Compute(ctx, request.Height, img)
	if err != nil {
		log.Err(err).Msg("engine computation failed")
		return s.failure(started, models.CodeComputeFailed, err.Error()), fmt.Errorf("%w: %w", ErrComputeFailed, err)
	}
	if len(measurements) == 0 {
		log.Error().Msg("engine returned no measurements")
		return s.failure(started, models.CodeComputeFailed, "engine returned no measurements"), ErrComputeFailed
	}

	entry := cachedMeasurement{Measurements: measurements, ModelVersion: s.engine.Version()}
	if cacheErr := s.cache.Set(ctx, key, entry, s.resultTTL); cacheErr != nil {
		log.Warn().Err(cacheErr).Msg("result cache store failed")
	}

	return s.success(started, measurements, s.engine.Version()), nil
}

// EngineReady reports warm-up state without triggering a warm-up.
func (s *measurementService) EngineReady(ctx context.Context) bool {
	ready, err := s.cache.Exists(ctx, engineReadyKey)
	if err != nil {
		return false
	}
	return ready
}

// CacheHealthy probes the cache backend. The probed key does not have to
// exist; only a transport error counts as unhealthy.
func (s *measurementService) CacheHealthy(ctx context.Context) bool {
	_, err := s.cache.Exists(ctx, engineReadyKey)
	return err == nil
}

// ensureEngineReady performs the warm-up exactly once per readiness window.
// The readiness flag lives in the shared cache so that sibling instances
// skip redundant warm-ups; a cache failure degrades to calling Warmup,
// which memoizes internally.
func (s *measurementService) ensureEngineReady(ctx context.Context) error {
	ready, err := s.cache.Exists(ctx, engineReadyKey)
	if err == nil && ready {
		return nil
	}

	if err := s.engine.Warmup(ctx); err != nil {
		return fmt.Errorf("engine warmup failed: %w", err)
	}

	if err := s.cache.Set(ctx, engineReadyKey, true, s.engineReadyTTL); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("could not persist engine readiness flag")
	}
	return nil
}

func (s *measurementService) success(started time.Time, measurements map[string]float64, modelVersion string) models.MeasurementResult {
	return models.MeasurementResult{
		Success:        true,
		Measurements:   measurements,
		ProcessingTime: time.Since(started).Seconds(),
		ModelVersion:   modelVersion,
		Timestamp:      models.UTCTimestamp(time.Now()),
	}
}

func (s *measurementService) failure(started time.Time, code, message string) models.MeasurementResult {
	return models.MeasurementResult{
		Success:        false,
		Error:          message,
		ErrorCode:      code,
		ProcessingTime: time.Since(started).Seconds(),
		ModelVersion:   s.engine.Version(),
		Timestamp:      models.UTCTimestamp(time.Now()),
	}
}

// measurementKey derives the deterministic cache key for a (photo, height)
// pair from the canonical pixel data, so re-encoded copies of the same photo
// share one entry.
func measurementKey(img imaging.Image, heightCm float64) string {
	dims := make([]byte, 8)
	binary.BigEndian.PutUint32(dims[:4], uint32(img.Width))
	binary.BigEndian.PutUint32(dims[4:], uint32(img.Height))

	height := []byte(strconv.FormatFloat(heightCm, 'f', -1, 64))

	return measurementKeyPrefix + utils.DigestHex(img.Pixels, dims, height)
}
