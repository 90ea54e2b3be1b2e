package qstash

import (
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testCurrentKey  = "sig_current_key_0123456789"
	testNextKey     = "sig_next_key_9876543210"
	testDestination = "https://api.example.com/v1/meta-marketing/worker"
)

func signToken(t *testing.T, key string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return token
}

func defaultClaims(body []byte) jwt.MapClaims {
	digest := sha256.Sum256(body)

	return jwt.MapClaims{
		"iss":  "Upstash",
		"sub":  testDestination,
		"exp":  time.Now().Add(5 * time.Minute).Unix(),
		"nbf":  time.Now().Add(-1 * time.Minute).Unix(),
		"body": base64.URLEncoding.EncodeToString(digest[:]),
	}
}

func newSignedRequest(t *testing.T, token string) *http.Request {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, testDestination, nil)
	require.NoError(t, err)
	req.Header.Set(SignatureHeader, token)
	return req
}

func TestReceiver_VerifyRequest(t *testing.T) {
	receiver := NewReceiver(testCurrentKey, testNextKey)
	body := []byte(`{"job_id":"abc123","account_id":"123","scope":"full"}`)

	tests := []struct {
		name    string
		token   func(t *testing.T) string
		wantErr string
	}{
		{
			name: "valid signature with current key",
			token: func(t *testing.T) string {
				return signToken(t, testCurrentKey, defaultClaims(body))
			},
		},
		{
			name: "valid signature with next key during rotation",
			token: func(t *testing.T) string {
				return signToken(t, testNextKey, defaultClaims(body))
			},
		},
		{
			name: "raw base64url body digest is accepted",
			token: func(t *testing.T) string {
				digest := sha256.Sum256(body)
				claims := defaultClaims(body)
				claims["body"] = base64.RawURLEncoding.EncodeToString(digest[:])
				return signToken(t, testCurrentKey, claims)
			},
		},
		{
			name: "unknown signing key",
			token: func(t *testing.T) string {
				return signToken(t, "some_other_key", defaultClaims(body))
			},
			wantErr: "parsing signature",
		},
		{
			name: "wrong issuer",
			token: func(t *testing.T) string {
				claims := defaultClaims(body)
				claims["iss"] = "somebody-else"
				return signToken(t, testCurrentKey, claims)
			},
			wantErr: "parsing signature",
		},
		{
			name: "expired token",
			token: func(t *testing.T) string {
				claims := defaultClaims(body)
				claims["exp"] = time.Now().Add(-1 * time.Minute).Unix()
				return signToken(t, testCurrentKey, claims)
			},
			wantErr: "parsing signature",
		},
		{
			name: "subject does not match destination",
			token: func(t *testing.T) string {
				claims := defaultClaims(body)
				claims["sub"] = "https://evil.example.com/worker"
				return signToken(t, testCurrentKey, claims)
			},
			wantErr: "subject does not match",
		},
		{
			name: "tampered body",
			token: func(t *testing.T) string {
				return signToken(t, testCurrentKey, defaultClaims([]byte(`{"job_id":"other"}`)))
			},
			wantErr: "body digest mismatch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newSignedRequest(t, tt.token(t))

			err := receiver.VerifyRequest(req, body, testDestination)

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestReceiver_VerifyRequest_MissingHeader(t *testing.T) {
	receiver := NewReceiver(testCurrentKey, "")

	req, err := http.NewRequest(http.MethodPost, testDestination, nil)
	require.NoError(t, err)

	err = receiver.VerifyRequest(req, []byte("{}"), testDestination)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing signature header")
}
