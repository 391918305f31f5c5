package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned for every authentication failure:
	// unknown login, wrong password, or deactivated account. Callers must
	// not learn which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrHeightOutOfRange = errors.New("height must be greater than 0 and at most 300 cm")
	ErrEngineNotReady   = errors.New("measurement engine is not ready")
	ErrComputeFailed    = errors.New("measurement computation failed")
)
