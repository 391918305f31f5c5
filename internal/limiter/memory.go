// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package limiter

import (
	"context"
	"sync"
	"time"
)

type window struct {
	count    int
	windowAt time.Time
}

// MemoryLimiter keeps fixed-window counters in process memory. It protects a
// single gateway instance only: counters are not shared across processes.
type MemoryLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time
}

// NewMemoryLimiter returns an in-process fixed-window limiter.
func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{
		windows: make(map[string]*window),
		now:     time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key, action string, policy Policy) (Decision, error) {
	counter := counterKey(action, key)
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[counter]
	if !ok || now.Sub(w.windowAt) >= policy.Window {
		w = &window{windowAt: now}
		l.windows[counter] = w
	}

	w.count++
	if w.count <= policy.Requests {
		return Decision{Allowed: true, Remaining: policy.Requests - w.count}, nil
	}

	retryAfter := policy.Window - now.Sub(w.windowAt)
	if retryAfter <= 0 {
		retryAfter = time.Second
	}
	return Decision{Allowed: false, Remaining: 0, RetryAfter: retryAfter}, nil
}

var _ Limiter = (*MemoryLimiter)(nil)
