// Package limiter implements fixed-window request rate limiting keyed by
// client identity and action class.
//
// Each action class (login, analyze, ...) carries its own request budget per
// window. Counters live either in Redis, shared across gateway instances, or
// in process memory for single-instance deployments. Backend failures fail
// open: a broken counter store must not take the API down with it.
package limiter

import (
	"context"
	"fmt"
	"time"
)

// Policy is the request budget for one action class.
type Policy struct {
	// Requests is the maximum number of accepted requests per window.
	Requests int
	// Window is the fixed window length.
	Window time.Duration
}

// Decision is the outcome of a single rate-limit check.
type Decision struct {
	// Allowed reports whether the request may proceed.
	Allowed bool
	// Remaining is the number of requests left in the current window.
	Remaining int
	// RetryAfter is a hint for rejected requests: how long until the
	// current window resets. Always positive when Allowed is false.
	RetryAfter time.Duration
}

// Limiter decides whether a request identified by key may perform the given
// action class under the supplied policy.
type Limiter interface {
	Allow(ctx context.Context, key, action string, policy Policy) (Decision, error)
}

func counterKey(action, key string) string {
	return fmt.Sprintf("ratelimit:%s:%s", action, key)
}
