// Package engine defines the measurement computation contract and a
// simulated implementation used until a real inference backend is attached.
package engine

import (
	"context"

	"github.com/MKhiriev/go-measure-gateway/internal/imaging"
)

// Engine produces body measurements from a normalized photo and the
// client-declared height.
type Engine interface {
	// Warmup prepares the engine for inference. It is expected to be
	// called once per process; repeated calls must be cheap.
	Warmup(ctx context.Context) error

	// Compute returns named measurements in centimeters.
	Compute(ctx context.Context, heightCm float64, img imaging.Image) (map[string]float64, error)

	// Version reports the model version stamped into every response.
	Version() string
}
