package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-measure-gateway/internal/logger"
	"github.com/MKhiriev/go-measure-gateway/internal/utils"
	"github.com/MKhiriev/go-measure-gateway/models"
)

// health reports liveness, cache reachability, the served model version and
// engine readiness. It is unauthenticated and never rate limited.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cacheState := "connected"
	if !h.services.MeasurementService.CacheHealthy(ctx) {
		cacheState = "unavailable"
	}

	response := models.HealthResponse{
		Status:      "healthy",
		Version:     h.services.AppInfoService.GetAppVersion(ctx),
		Cache:       cacheState,
		EngineReady: h.services.MeasurementService.EngineReady(ctx),
		Timestamp:   models.UTCTimestamp(time.Now()),
	}

	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write health response")
	}
}
