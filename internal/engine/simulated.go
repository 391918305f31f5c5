package engine

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/MKhiriev/go-measure-gateway/internal/imaging"
	"github.com/MKhiriev/go-measure-gateway/internal/logger"
	"github.com/MKhiriev/go-measure-gateway/internal/utils"
)

// anthropometric ratios relative to body height
var measurementRatios = map[string]float64{
	"waist":          0.49,
	"belly":          0.47,
	"chest":          0.56,
	"wrist":          0.09,
	"neck":           0.20,
	"arm_length":     0.31,
	"thigh":          0.31,
	"shoulder_width": 0.27,
	"hips":           0.56,
	"ankle":          0.12,
}

// Simulated approximates body measurements from height using fixed
// anthropometric ratios, with a small per-photo adjustment derived from the
// image content. The same photo and height always yield the same result.
type Simulated struct {
	version     string
	warmupDelay time.Duration
	logger      *logger.Logger

	warmupMu sync.Mutex
	warmedUp bool
}

// NewSimulated creates a simulated engine reporting the given model version.
// warmupDelay emulates model load time on the first Warmup call.
func NewSimulated(version string, warmupDelay time.Duration, log *logger.Logger) *Simulated {
	return &Simulated{
		version:     version,
		warmupDelay: warmupDelay,
		logger:      log,
	}
}

// Warmup emulates loading model weights. Only the first successful call pays
// the delay. An interrupted warm-up fails that call alone; the engine stays
// cold and the next caller retries.
func (e *Simulated) Warmup(ctx context.Context) error {
	e.warmupMu.Lock()
	defer e.warmupMu.Unlock()

	if e.warmedUp {
		return nil
	}

	e.logger.Debug().Dur("delay", e.warmupDelay).Msg("warming up measurement engine")
	select {
	case <-time.After(e.warmupDelay):
	case <-ctx.Done():
		return fmt.Errorf("engine warmup interrupted: %w", ctx.Err())
	}

	e.warmedUp = true
	return nil
}

func (e *Simulated) Compute(ctx context.Context, heightCm float64, img imaging.Image) (map[string]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("measurement computation aborted: %w", err)
	}
	if len(img.Pixels) == 0 {
		return nil, fmt.Errorf("cannot compute measurements: empty image")
	}

	jitter := photoJitter(img)

	measurements := make(map[string]float64, len(measurementRatios)+1)
	measurements["height"] = round1(heightCm)
	for name, ratio := range measurementRatios {
		measurements[name] = round1(heightCm * ratio * jitter)
	}
	return measurements, nil
}

func (e *Simulated) Version() string {
	return e.version
}

// photoJitter derives a deterministic factor in [0.97, 1.03) from the image
// pixels, so different photos of the same height produce slightly different
// measurements.
func photoJitter(img imaging.Image) float64 {
	digest := utils.Digest(img.Pixels)
	seed := binary.BigEndian.Uint64(digest[:8])
	return 0.97 + 0.06*(float64(seed%10000)/10000)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

var _ Engine = (*Simulated)(nil)
