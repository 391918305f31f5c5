package config

import "time"

// Default values mirroring the documented behavior of the gateway: a 30
// minute session-token lifetime, a 10 requests / 60 seconds default rate
// budget with tighter limits on the expensive upload path, and cache TTLs
// where results expire before the engine-ready flag does.
const (
	DefaultTokenIssuer   = "go-measure-gateway"
	DefaultTokenDuration = 30 * time.Minute

	DefaultHTTPAddress    = "0.0.0.0:8000"
	DefaultRequestTimeout = 60 * time.Second

	DefaultRateLimitRequests = 10
	DefaultRateLimitWindow   = 60 * time.Second

	DefaultAnalyzeRequests = 5
	DefaultAnalyzeWindow   = 60 * time.Second

	DefaultAnalyzeBase64Requests = 10
	DefaultAnalyzeBase64Window   = 60 * time.Second

	DefaultResultTTL      = 30 * time.Minute
	DefaultEngineReadyTTL = time.Hour

	DefaultModelVersion = "1.0.0"
	DefaultWarmupDelay  = 2 * time.Second
)

// defaultConfig returns the lowest-priority configuration layer. Secrets
// (token sign key, DSNs, Redis address) have no defaults on purpose.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Cache: Cache{
			ResultTTL:      DefaultResultTTL,
			EngineReadyTTL: DefaultEngineReadyTTL,
		},
		RateLimit: RateLimit{
			Requests: DefaultRateLimitRequests,
			Window:   DefaultRateLimitWindow,
			Analyze: ActionPolicy{
				Requests: DefaultAnalyzeRequests,
				Window:   DefaultAnalyzeWindow,
			},
			AnalyzeBase64: ActionPolicy{
				Requests: DefaultAnalyzeBase64Requests,
				Window:   DefaultAnalyzeBase64Window,
			},
		},
		Engine: Engine{
			ModelVersion: DefaultModelVersion,
			WarmupDelay:  DefaultWarmupDelay,
		},
	}
}
