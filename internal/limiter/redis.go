package limiter

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-measure-gateway/internal/logger"
)

// RedisLimiter counts requests in Redis so that all gateway instances share
// one budget per client and action class.
//
// The counter for a window is INCRemented on every check; the first hit in a
// window sets the key's expiry to the window length, so windows reset
// themselves without a sweeper.
type RedisLimiter struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisLimiter wraps an existing Redis connection. The limiter shares the
// connection pool with the result cache.
func NewRedisLimiter(client *redis.Client, log *logger.Logger) *RedisLimiter {
	log.Debug().Msg("creating redis rate limiter")
	return &RedisLimiter{client: client, logger: log}
}

func (l *RedisLimiter) Allow(ctx context.Context, key, action string, policy Policy) (Decision, error) {
	counter := counterKey(action, key)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, counter)
	pipe.ExpireNX(ctx, counter, policy.Window)
	if _, err := pipe.Exec(ctx); err != nil {
		// Fail open: a broken counter store must not reject traffic.
		logger.FromContext(ctx).Warn().Err(err).
			Str("key", counter).
			Msg("rate limit check failed, allowing request")
		return Decision{Allowed: true, Remaining: policy.Requests}, nil
	}

	count := int(incr.Val())
	if count <= policy.Requests {
		return Decision{Allowed: true, Remaining: policy.Requests - count}, nil
	}

	retryAfter := policy.Window
	if ttl, err := l.client.TTL(ctx, counter).Result(); err == nil && ttl > 0 {
		retryAfter = ttl
	}

	return Decision{Allowed: false, Remaining: 0, RetryAfter: retryAfter}, nil
}

var _ Limiter = (*RedisLimiter)(nil)
