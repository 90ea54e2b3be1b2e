package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	metadomain "github.com/rfwatson44/MindfulAI-sub001/infrastructure/integrator/meta/domain"
	"github.com/rfwatson44/MindfulAI-sub001/internal/config"
)

func collectCampaigns(into *[]metadomain.Campaign) func([]metadomain.Campaign) error {
	return func(page []metadomain.Campaign) error {
		*into = append(*into, page...)
		return nil
	}
}

func newTestConfig(serverURL string) *config.Config {
	return &config.Config{
		Meta: config.Meta{
			URL:         serverURL + "/v22.0",
			AccessToken: "test-token",
			AppID:       "app-id",
			AppSecret:   "app-secret",
		},
		MetaMarketingSync: config.MetaMarketingSync{
			PageSize:         2,
			MaxPagesPerLevel: 10,
		},
		RateLimit: config.RateLimit{
			CallsPerSecond: 1000,
			Burst:          1000,
			BackoffBaseMs:  1,
			BackoffMaxMs:   5,
			MaxRetries:     3,
		},
	}
}

func newTestClient(cfg *config.Config) *MetaClient {
	return NewClient(cfg, NewUsageTracker(cfg.RateLimit), nil).(*MetaClient)
}

func TestAppSecretProof(t *testing.T) {
	// HMAC-SHA256("token", key "secret")
	proof := appSecretProof("token", "secret")
	assert.Equal(t, "e941110e3d2bfe82621f0e3e1434730d7305d106c5f68c87165d0b27a4611a4a", proof)
}

func TestMetaClient_ListCampaigns_FollowsCursors(t *testing.T) {
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++

		assert.Equal(t, "/v22.0/act_123/campaigns", r.URL.Path)
		assert.Equal(t, "test-token", r.URL.Query().Get("access_token"))
		assert.NotEmpty(t, r.URL.Query().Get("appsecret_proof"))
		assert.Equal(t, "2", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")

		if r.URL.Query().Get("after") == "" {
			fmt.Fprint(w, `{
				"data": [
					{"id": "c1", "name": "Campaign One", "status": "ACTIVE"},
					{"id": "c2", "name": "Campaign Two", "status": "PAUSED"}
				],
				"paging": {"cursors": {"after": "cursor-2"}, "next": "https://next"}
			}`)
			return
		}

		assert.Equal(t, "cursor-2", r.URL.Query().Get("after"))
		fmt.Fprint(w, `{
			"data": [{"id": "c3", "name": "Campaign Three", "status": "ACTIVE"}],
			"paging": {"cursors": {}}
		}`)
	}))
	defer server.Close()

	client := newTestClient(newTestConfig(server.URL))

	campaigns := make([]metadomain.Campaign, 0)
	err := client.ListCampaigns(context.Background(), "123", collectCampaigns(&campaigns))
	require.NoError(t, err)

	assert.Equal(t, 2, requests)
	require.Len(t, campaigns, 3)
	assert.Equal(t, "c1", campaigns[0].ID)
	assert.Equal(t, "c3", campaigns[2].ID)
}

func TestMetaClient_RetriesOnThrottle(t *testing.T) {
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++

		if requests == 1 {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error": {"message": "too many calls", "code": 17}}`)
			return
		}

		fmt.Fprint(w, `{"data": [], "paging": {}}`)
	}))
	defer server.Close()

	client := newTestClient(newTestConfig(server.URL))

	campaigns := make([]metadomain.Campaign, 0)
	err := client.ListCampaigns(context.Background(), "123", collectCampaigns(&campaigns))
	require.NoError(t, err)

	assert.Equal(t, 2, requests)
	assert.Empty(t, campaigns)
}

func TestMetaClient_PermanentErrorDoesNotRetry(t *testing.T) {
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error": {"message": "unsupported request", "code": 100}}`)
	}))
	defer server.Close()

	client := newTestClient(newTestConfig(server.URL))

	campaigns := make([]metadomain.Campaign, 0)
	err := client.ListCampaigns(context.Background(), "123", collectCampaigns(&campaigns))
	require.Error(t, err)
	assert.Equal(t, 1, requests)
}

func TestMetaClient_TokenExpired(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error": {"message": "session expired", "code": 190, "error_subcode": 463}}`)
	}))
	defer server.Close()

	client := newTestClient(newTestConfig(server.URL))

	campaigns := make([]metadomain.Campaign, 0)
	err := client.ListCampaigns(context.Background(), "123", collectCampaigns(&campaigns))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token expired")
}

func TestMetaClient_ListInsights_AddressesAccountNode(t *testing.T) {
	var requestPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestPath = r.URL.Path
		assert.Equal(t, "campaign", r.URL.Query().Get("level"))
		fmt.Fprint(w, `{"data": [], "paging": {}}`)
	}))
	defer server.Close()

	client := newTestClient(newTestConfig(server.URL))
	since := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, 8, 8, 0, 0, 0, 0, time.UTC)

	err := client.ListInsights(context.Background(), "123", "123", "campaign", since, until,
		func([]metadomain.Insight) error { return nil })
	require.NoError(t, err)

	// Account-wide insight queries must target the act_ node even when the
	// breakdown level is campaign, adset or ad.
	assert.Equal(t, "/v22.0/act_123/insights", requestPath)
}

func TestMetaClient_ListInsights_StreamsPages(t *testing.T) {
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++

		if r.URL.Query().Get("after") == "" {
			fmt.Fprint(w, `{
				"data": [{"campaign_id": "c1", "impressions": "100"}],
				"paging": {"cursors": {"after": "cursor-2"}, "next": "https://next"}
			}`)
			return
		}

		fmt.Fprint(w, `{
			"data": [{"campaign_id": "c1", "impressions": "50"}],
			"paging": {"cursors": {}}
		}`)
	}))
	defer server.Close()

	client := newTestClient(newTestConfig(server.URL))
	since := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, 8, 8, 0, 0, 0, 0, time.UTC)

	pages := 0
	rows := 0
	err := client.ListInsights(context.Background(), "123", "123", "campaign", since, until,
		func(page []metadomain.Insight) error {
			pages++
			rows += len(page)
			return nil
		})
	require.NoError(t, err)

	assert.Equal(t, 2, requests)
	assert.Equal(t, 2, pages)
	assert.Equal(t, 2, rows)
}
