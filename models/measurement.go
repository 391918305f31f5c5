// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models defines the domain records shared between the transport,
// service, and storage layers: user accounts, session tokens, and the
// measurement request/response envelopes returned by the gateway.
package models

import "time"

// Stable symbolic error codes carried in the error_code field of failure
// envelopes. Transport status codes may vary per deployment; these strings
// are the contract clients should branch on.
const (
	CodeUnauthenticated   = "Unauthenticated"
	CodeRateLimited       = "RateLimited"
	CodeValidationError   = "ValidationError"
	CodeEngineUnavailable = "EngineUnavailable"
	CodeInvalidImage      = "InvalidImage"
	CodeComputeFailed     = "ComputeFailed"
	CodeInternalError     = "InternalError"
)

// Height bounds accepted by the gateway, in centimeters. The lower bound is
// exclusive, the upper bound inclusive.
const (
	MinHeightCm = 0.0
	MaxHeightCm = 300.0
)

// MeasurementRequest is the inbound payload of the analysis pipeline. The
// transport layer is responsible for extracting the raw image bytes
// (multipart file content, or the decoded base64 payload) before handing
// the request to the service layer.
type MeasurementRequest struct {
	// Height is the subject's height in centimeters. Must be strictly
	// greater than MinHeightCm and at most MaxHeightCm.
	Height float64 `json:"height"`

	// ImageData holds the raw encoded image bytes (JPEG, PNG or GIF).
	ImageData []byte `json:"image_data"`
}

// MeasurementResult is the uniform terminal envelope produced by the
// measurement orchestrator. Exactly one of Measurements or Error is
// populated; the envelope is never mutated after construction and no
// partial results are ever emitted.
type MeasurementResult struct {
	// Success reports whether the computation produced measurements.
	Success bool `json:"success"`

	// Measurements maps measurement names to values in centimeters.
	// Populated only on success.
	Measurements map[string]float64 `json:"measurements,omitempty"`

	// Error is the free-text failure description. Populated only on
	// failure; may carry collaborator messages verbatim but never raw
	// request bytes.
	Error string `json:"error,omitempty"`

	// ErrorCode is the stable symbolic code for the failure class
	// (one of the Code* constants). Populated only on failure.
	ErrorCode string `json:"error_code,omitempty"`

	// ProcessingTime is the wall-clock duration of the current call in
	// seconds, measured from request entry to the terminal state. For
	// cache hits it reflects the (near-zero) lookup cost of this call,
	// never the historical compute cost.
	ProcessingTime float64 `json:"processing_time"`

	// ModelVersion identifies the engine version that produced the
	// measurements.
	ModelVersion string `json:"model_version,omitempty"`

	// Timestamp is the ISO-8601 UTC time the envelope was assembled.
	Timestamp string `json:"timestamp"`
}

// UTCTimestamp formats t as the ISO-8601 UTC string used in all envelopes.
func UTCTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
