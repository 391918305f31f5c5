package http

import (
	"net"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-measure-gateway/internal/config"
	"github.com/MKhiriev/go-measure-gateway/internal/limiter"
	"github.com/MKhiriev/go-measure-gateway/internal/logger"
	"github.com/MKhiriev/go-measure-gateway/models"
)

// rateLimit returns a middleware enforcing the given action-class policy,
// keyed by client IP. Rejections carry the RateLimited code, HTTP 429 and a
// positive retry_after hint. Limiter backend failures never reject.
func (h *Handler) rateLimit(action string, policy config.ActionPolicy) func(http.Handler) http.Handler {
	limitPolicy := limiter.Policy{Requests: policy.Requests, Window: policy.Window}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)

			decision, err := h.limiter.Allow(r.Context(), key, action, limitPolicy)
			if err != nil {
				logger.FromRequest(r).Warn().Err(err).
					Str("action", action).
					Msg("rate limiter error, allowing request")
				next.ServeHTTP(w, r)
				return
			}

			if !decision.Allowed {
				logger.FromRequest(r).Warn().
					Str("action", action).
					Str("client", key).
					Dur("retry_after", decision.RetryAfter).
					Msg("rate limit exceeded")
				writeError(w, r, "rate limit exceeded", models.CodeRateLimited, decision.RetryAfter)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP resolves the client identity used as the rate-limit key. The
// leftmost X-Forwarded-For entry wins when present, otherwise the connection
// peer address.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if first, _, ok := strings.Cut(forwarded, ","); ok {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(forwarded)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
