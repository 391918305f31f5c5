package http

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-measure-gateway/internal/logger"
	"github.com/MKhiriev/go-measure-gateway/internal/utils"
	"github.com/MKhiriev/go-measure-gateway/models"
)

// maxUploadBytes caps photo uploads at 10 MiB.
const maxUploadBytes = 10 << 20

// analyze handles the multipart upload form of the measurement action:
// a file field "image" and a form field "height" in centimeters.
func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		log.Warn().Err(err).Msg("invalid multipart form")
		writeError(w, r, "expected multipart form with image and height fields", models.CodeValidationError, 0)
		return
	}

	height, ok := parseHeight(w, r, r.FormValue("height"))
	if !ok {
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		log.Warn().Err(err).Msg("missing image file field")
		writeError(w, r, "image file is required", models.CodeValidationError, 0)
		return
	}
	defer file.Close()

	imageData, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		log.Err(err).Msg("failed to read uploaded image")
		writeError(w, r, "failed to read uploaded image", models.CodeInternalError, 0)
		return
	}

	h.respondWithAnalysis(w, r, models.MeasurementRequest{Height: height, ImageData: imageData})
}

// base64AnalyzeRequest is the JSON body of the base64 form of the
// measurement action.
type base64AnalyzeRequest struct {
	ImageData string  `json:"image_data"`
	Height    float64 `json:"height"`
}

// analyzeBase64 handles the JSON form of the measurement action: the photo
// arrives base64-encoded, optionally with a data-URL prefix.
func (h *Handler) analyzeBase64(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request base64AnalyzeRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxUploadBytes)).Decode(&request); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		writeError(w, r, "invalid JSON was passed", models.CodeValidationError, 0)
		return
	}

	if !checkHeight(w, r, request.Height) {
		return
	}

	encoded := request.ImageData
	// tolerate data URLs: "data:image/png;base64,...."
	if _, after, found := strings.Cut(encoded, "base64,"); found {
		encoded = after
	}

	imageData, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		log.Warn().Err(err).Msg("undecodable base64 image payload")
		writeError(w, r, "image_data is not valid base64", models.CodeInvalidImage, 0)
		return
	}

	h.respondWithAnalysis(w, r, models.MeasurementRequest{Height: request.Height, ImageData: imageData})
}

// respondWithAnalysis runs the measurement pipeline and writes the result
// envelope with a status derived from the envelope's error code.
func (h *Handler) respondWithAnalysis(w http.ResponseWriter, r *http.Request, request models.MeasurementRequest) {
	log := logger.FromRequest(r)

	result, err := h.services.MeasurementService.Analyze(r.Context(), request)
	if err != nil && result.ErrorCode == "" {
		log.Err(err).Msg("measurement pipeline failed")
		writeError(w, r, "measurement processing failed", models.CodeInternalError, 0)
		return
	}

	status := http.StatusOK
	if !result.Success {
		status = statusForCode(result.ErrorCode)
	}

	if _, err := utils.WriteJSON(w, result, status); err != nil {
		log.Err(err).Msg("failed to write measurement response")
	}
}

// parseHeight converts the client-declared height form value and bounds-checks it.
func parseHeight(w http.ResponseWriter, r *http.Request, raw string) (float64, bool) {
	height, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		writeError(w, r, "height must be a number", models.CodeValidationError, 0)
		return 0, false
	}
	return height, checkHeight(w, r, height)
}

// checkHeight validates the height against the accepted interval of
// (0, 300] centimeters.
func checkHeight(w http.ResponseWriter, r *http.Request, height float64) bool {
	if height <= models.MinHeightCm || height > models.MaxHeightCm {
		writeError(w, r, "height must be greater than 0 and at most 300 cm", models.CodeValidationError, 0)
		return false
	}
	return true
}
