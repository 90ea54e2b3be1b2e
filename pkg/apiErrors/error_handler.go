package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes returned by the sync API
const (
	// Authorization errors (1000-1999)
	ErrMissingCronSecret  = "AUTH_001" // Cron secret header absent
	ErrInvalidCronSecret  = "AUTH_002" // Cron secret mismatch
	ErrInvalidSignature   = "AUTH_003" // Queue or webhook signature failed verification
	ErrInvalidVerifyToken = "AUTH_004" // Webhook verify token mismatch

	// Validation errors (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Malformed request
	ErrMissingRequiredData = "VAL_002" // Required field absent
	ErrInvalidFormat       = "VAL_003" // Field present but unparseable

	// Resource errors (4000-4999)
	ErrJobNotFound     = "RES_001" // Unknown job ID
	ErrAccountNotFound = "RES_002" // Unknown account ID
	ErrJobNotRunning   = "RES_003" // Cancel requested for a finished job

	// Server errors (5000-5999)
	ErrInternalServer    = "SRV_001" // Unexpected server error
	ErrDatabaseOperation = "SRV_002" // Database operation failed
	ErrExternalService   = "SRV_003" // Meta API or queue failure
	ErrRateLimited       = "SRV_004" // Vendor throttling exhausted retries
)

// Error code to HTTP status mapping
var httpStatusMap = map[string]int{
	ErrMissingCronSecret:   http.StatusUnauthorized,
	ErrInvalidCronSecret:   http.StatusUnauthorized,
	ErrInvalidSignature:    http.StatusUnauthorized,
	ErrInvalidVerifyToken:  http.StatusForbidden,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrJobNotFound:         http.StatusNotFound,
	ErrAccountNotFound:     http.StatusNotFound,
	ErrJobNotRunning:       http.StatusConflict,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrRateLimited:         http.StatusTooManyRequests,
}

// APIError is the standard error envelope
type APIError struct {
	Code    string `json:"code"`              // Machine-readable error code
	Message string `json:"message,omitempty"` // Human-readable description (optional)
	Details any    `json:"details,omitempty"` // Extra context (optional)
}

// WriteError writes the standardized error to the HTTP response
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError builds an API error from a Go error
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
