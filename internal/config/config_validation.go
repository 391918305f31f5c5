// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.RateLimit.Requests <= 0 || cfg.RateLimit.Window <= 0 {
		return ErrInvalidRateLimitConfigs
	}

	// Results must not outlive the engine-ready flag, otherwise a stale
	// result could be served for an engine that is no longer warm.
	if cfg.Cache.ResultTTL <= 0 || cfg.Cache.EngineReadyTTL < cfg.Cache.ResultTTL {
		return ErrInvalidCacheConfigs
	}

	return nil
}

// Policy returns the effective (limit, window) pair for the given override,
// falling back to the configured defaults for zero fields.
func (rl RateLimit) Policy(override ActionPolicy) ActionPolicy {
	effective := ActionPolicy{
		Requests: override.Requests,
		Window:   override.Window,
	}
	if effective.Requests <= 0 {
		effective.Requests = rl.Requests
	}
	if effective.Window <= 0 {
		effective.Window = rl.Window
	}

	return effective
}
