package models

// ErrorResponse is the uniform failure envelope returned by the gateway for
// guard-stage rejections (authentication, rate limiting, validation) and
// unanticipated errors.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	ErrorCode string `json:"error_code"`

	// RetryAfter is the number of seconds until the caller's rate window
	// resets. Present only on RateLimited rejections.
	RetryAfter int64 `json:"retry_after,omitempty"`

	Timestamp string `json:"timestamp"`
}

// TokenResponse is returned by the login action.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RegisterResponse is returned by the register action.
type RegisterResponse struct {
	Message string `json:"message"`
	Login   string `json:"login"`
}

// UserInfoResponse is returned by the get-current-identity action.
type UserInfoResponse struct {
	Login  string `json:"login"`
	Email  string `json:"email"`
	Active bool   `json:"is_active"`
}

// HealthResponse is returned by the liveness action.
type HealthResponse struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	Cache       string `json:"cache"`
	EngineReady bool   `json:"engine_ready"`
	Timestamp   string `json:"timestamp"`
}
