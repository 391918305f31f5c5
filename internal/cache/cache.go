// Package cache provides the shared key-value layer used for measurement
// result memoization and engine readiness flags.
//
// Two implementations are provided: a Redis-backed cache for multi-instance
// deployments and an in-process cache for single-instance or degraded
// operation. Both are best-effort: callers treat cache errors as misses and
// never fail a request because the cache is unavailable.
package cache

import (
	"context"
	"time"
)

// Cache is the best-effort key-value store contract.
//
// Get unmarshals the stored value into dest and reports whether the key was
// present. A missing key is (false, nil), not an error.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
