package metadomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorResponse_IsRateLimit(t *testing.T) {
	tests := []struct {
		name     string
		details  ErrorDetails
		expected bool
	}{
		{"app level throttle", ErrorDetails{Code: 4}, true},
		{"user level throttle", ErrorDetails{Code: 17}, true},
		{"page level throttle", ErrorDetails{Code: 32}, true},
		{"custom rate limit", ErrorDetails{Code: 613}, true},
		{"business use case limit", ErrorDetails{Code: 80000}, true},
		{"ads insights limit", ErrorDetails{Code: 80004}, true},
		{"request limit by type", ErrorDetails{Code: 1, Type: "ApplicationRequestLimitReached"}, true},
		{"permission error", ErrorDetails{Code: 200}, false},
		{"generic error", ErrorDetails{Code: 100, Type: "GraphMethodException"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response := &ErrorResponse{Error: tt.details}
			assert.Equal(t, tt.expected, response.IsRateLimit())
		})
	}
}

func TestErrorResponse_IsTokenExpired(t *testing.T) {
	tests := []struct {
		name     string
		details  ErrorDetails
		expected bool
	}{
		{"expired token code", ErrorDetails{Code: 190}, true},
		{"password changed subcode", ErrorDetails{Code: 102, Type: "OAuthException", ErrorSubcode: 460}, true},
		{"session expired subcode", ErrorDetails{Code: 102, Type: "OAuthException", ErrorSubcode: 463}, true},
		{"invalid token subcode", ErrorDetails{Code: 102, Type: "OAuthException", ErrorSubcode: 467}, true},
		{"oauth error without subcode", ErrorDetails{Code: 102, Type: "OAuthException"}, false},
		{"throttle is not token expiry", ErrorDetails{Code: 17}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response := &ErrorResponse{Error: tt.details}
			assert.Equal(t, tt.expected, response.IsTokenExpired())
		})
	}
}

func TestErrorResponse_Err(t *testing.T) {
	response := &ErrorResponse{Error: ErrorDetails{Code: 100, ErrorSubcode: 33, Message: "Unsupported get request"}}
	assert.EqualError(t, response.Err(), "meta api error (code 100, subcode 33): Unsupported get request")
}
