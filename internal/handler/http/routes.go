package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-measure-gateway/internal/config"
)

// Action classes used as rate-limit counter namespaces. Each class carries
// its own budget; the names are part of the counter key format and must not
// change between releases.
const (
	actionRegister      = "register"
	actionLogin         = "login"
	actionMe            = "me"
	actionAnalyze       = "analyze"
	actionAnalyzeBase64 = "analyze_base64"
)

// Init builds the router. Guard order on protected routes is fixed:
// authentication, then rate limiting, then request validation inside the
// handler. A request rejected by an earlier guard never reaches the later
// ones.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/health", h.health)

	defaultPolicy := h.rateLimitConf.Policy(config.ActionPolicy{})

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.With(h.rateLimit(actionRegister, defaultPolicy)).
			Post("/api/v1/auth/register", h.register)
		r.With(h.rateLimit(actionLogin, defaultPolicy)).
			Post("/api/v1/auth/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.With(h.rateLimit(actionMe, defaultPolicy)).
			Get("/api/v1/auth/me", h.me)

		r.With(h.rateLimit(actionAnalyze, h.rateLimitConf.Policy(h.rateLimitConf.Analyze))).
			Post("/api/v1/measurements/analyze", h.analyze)
		r.With(h.rateLimit(actionAnalyzeBase64, h.rateLimitConf.Policy(h.rateLimitConf.AnalyzeBase64))).
			Post("/api/v1/measurements/analyze-base64", h.analyzeBase64)
	})

	return router
}
