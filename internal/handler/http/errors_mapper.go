package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-measure-gateway/internal/logger"
	"github.com/MKhiriev/go-measure-gateway/internal/utils"
	"github.com/MKhiriev/go-measure-gateway/models"
)

// statusForCode maps the stable API error codes to HTTP statuses.
func statusForCode(code string) int {
	switch code {
	case models.CodeValidationError, models.CodeInvalidImage:
		return http.StatusBadRequest
	case models.CodeUnauthenticated:
		return http.StatusUnauthorized
	case models.CodeRateLimited:
		return http.StatusTooManyRequests
	case models.CodeEngineUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError emits the uniform failure envelope. retryAfter, when positive,
// is included both in the body and as a Retry-After header.
func writeError(w http.ResponseWriter, r *http.Request, message, code string, retryAfter time.Duration) {
	writeErrorStatus(w, r, statusForCode(code), message, code, retryAfter)
}

// writeErrorStatus is writeError with an explicit HTTP status, for the few
// responses whose status is more specific than the code's default mapping
// (e.g. 409 for a duplicate login).
func writeErrorStatus(w http.ResponseWriter, r *http.Request, status int, message, code string, retryAfter time.Duration) {
	response := models.ErrorResponse{
		Success:   false,
		Error:     message,
		ErrorCode: code,
		Timestamp: models.UTCTimestamp(time.Now()),
	}
	if retryAfter > 0 {
		seconds := int64(retryAfter / time.Second)
		if seconds < 1 {
			seconds = 1
		}
		response.RetryAfter = seconds
		w.Header().Set("Retry-After", strconv.FormatInt(seconds, 10))
	}

	if _, err := utils.WriteJSON(w, response, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write error response")
	}
}
