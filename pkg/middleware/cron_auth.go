package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/rfwatson44/MindfulAI-sub001/pkg/apiErrors"
)

// CronSecret guards scheduled endpoints with the shared CRON_SECRET.
// The secret is accepted either as a bearer token or in x-cron-secret.
func CronSecret(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get("x-cron-secret")
			if provided == "" {
				authHeader := r.Header.Get("Authorization")
				provided = strings.TrimPrefix(authHeader, "Bearer ")
				if provided == authHeader {
					provided = ""
				}
			}

			if provided == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingCronSecret, "cron secret is required", nil)
				return
			}

			if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidCronSecret, "cron secret mismatch", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
