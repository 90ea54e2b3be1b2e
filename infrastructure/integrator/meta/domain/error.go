package metadomain

import "fmt"

// ErrorResponse is the Graph API error envelope
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails carries the vendor's error fields
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	IsTransient  bool        `json:"is_transient,omitempty"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

func (e *ErrorResponse) Err() error {
	return fmt.Errorf("meta api error (code %d, subcode %d): %s", e.Error.Code, e.Error.ErrorSubcode, e.Error.Message)
}

// Throttle codes: 4 app-level, 17 user-level, 32 page-level,
// 613 custom rate limit, 80000/80004 business use case limits.
var rateLimitCodes = map[int]struct{}{
	4:     {},
	17:    {},
	32:    {},
	613:   {},
	80000: {},
	80004: {},
}

// IsRateLimit reports whether the error is a recognized throttle response
func (e *ErrorResponse) IsRateLimit() bool {
	if _, ok := rateLimitCodes[e.Error.Code]; ok {
		return true
	}
	return e.Error.Type == "ApplicationRequestLimitReached"
}

// IsTokenExpired reports whether the error indicates an expired token.
// Code 190 is "access token expired"; subcodes 460, 463 and 467 are
// the related OAuthException variants.
func (e *ErrorResponse) IsTokenExpired() bool {
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}
