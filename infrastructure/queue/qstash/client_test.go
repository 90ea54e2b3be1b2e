package qstash

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfwatson44/MindfulAI-sub001/internal/config"
)

func TestClient_Publish(t *testing.T) {
	var (
		gotPath    string
		gotHeaders http.Header
		gotBody    []byte
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotHeaders = r.Header.Clone()
		gotBody, _ = io.ReadAll(r.Body)

		fmt.Fprint(w, `{"messageId": "msg-42"}`)
	}))
	defer server.Close()

	cfg := &config.Config{
		QStash: config.QStash{
			URL:     server.URL,
			Token:   "qstash-token",
			Retries: 3,
		},
	}

	client := NewClient(cfg)

	messageID, err := client.Publish(
		context.Background(),
		"https://api.example.com/v1/meta-marketing/worker",
		map[string]string{"job_id": "job001"},
		WithDeduplicationID("job001"),
	)

	require.NoError(t, err)
	assert.Equal(t, "msg-42", messageID)
	assert.Equal(t, "/v2/publish/https://api.example.com/v1/meta-marketing/worker", gotPath)
	assert.Equal(t, "Bearer qstash-token", gotHeaders.Get("Authorization"))
	assert.Equal(t, "application/json", gotHeaders.Get("Content-Type"))
	assert.Equal(t, "3", gotHeaders.Get("Upstash-Retries"))
	assert.Equal(t, "job001", gotHeaders.Get("Upstash-Deduplication-Id"))
	assert.JSONEq(t, `{"job_id": "job001"}`, string(gotBody))
}

func TestClient_Publish_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error": "invalid token"}`)
	}))
	defer server.Close()

	cfg := &config.Config{
		QStash: config.QStash{URL: server.URL, Token: "bad"},
	}

	client := NewClient(cfg)

	_, err := client.Publish(context.Background(), "https://api.example.com/worker", map[string]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}
