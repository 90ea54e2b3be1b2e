package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCronSecret(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		wantStatus int
	}{
		{
			name:       "valid x-cron-secret header",
			headers:    map[string]string{"x-cron-secret": "topsecret"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "valid bearer token",
			headers:    map[string]string{"Authorization": "Bearer topsecret"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing secret",
			headers:    map[string]string{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong secret",
			headers:    map[string]string{"x-cron-secret": "nope"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "authorization header without bearer prefix",
			headers:    map[string]string{"Authorization": "topsecret"},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/v1/cron/meta-marketing", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			recorder := httptest.NewRecorder()
			CronSecret("topsecret")(next).ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
