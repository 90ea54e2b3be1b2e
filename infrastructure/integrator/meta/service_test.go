package meta

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	metadomain "github.com/rfwatson44/MindfulAI-sub001/infrastructure/integrator/meta/domain"
	"github.com/rfwatson44/MindfulAI-sub001/infrastructure/integrator/meta/metaclient"
	"github.com/rfwatson44/MindfulAI-sub001/internal/config"
	"github.com/rfwatson44/MindfulAI-sub001/internal/domain"
)

// fakeClient implements metaclient.Client with canned responses. Insight
// rows are delivered as pages to mirror the streaming client.
type fakeClient struct {
	account      *metadomain.AdAccount
	insightPages [][]metadomain.Insight
	token        *metaclient.TokenInfo
	err          error
}

func (f *fakeClient) GetAdAccount(ctx context.Context, accountID string) (*metadomain.AdAccount, error) {
	return f.account, f.err
}

func (f *fakeClient) ListAdAccountsByBusiness(ctx context.Context, businessID string) ([]metadomain.AdAccount, error) {
	return nil, f.err
}

func (f *fakeClient) ListCampaigns(ctx context.Context, accountID string, fn func([]metadomain.Campaign) error) error {
	return f.err
}

func (f *fakeClient) ListAdSets(ctx context.Context, accountID string, fn func([]metadomain.AdSet) error) error {
	return f.err
}

func (f *fakeClient) ListAds(ctx context.Context, accountID string, fn func([]metadomain.Ad) error) error {
	return f.err
}

func (f *fakeClient) ListInsights(ctx context.Context, accountID, objectID, level string, since, until time.Time, fn func([]metadomain.Insight) error) error {
	if f.err != nil {
		return f.err
	}
	for _, page := range f.insightPages {
		if err := fn(page); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeClient) DebugToken(ctx context.Context) (*metaclient.TokenInfo, error) {
	return f.token, f.err
}

func (f *fakeClient) ExchangeLongLivedToken(ctx context.Context, shortLivedToken string) (string, int64, error) {
	return "long-lived-token", 5184000, f.err
}

func TestMetaIntegrator_FetchAccount(t *testing.T) {
	client := &fakeClient{
		account: &metadomain.AdAccount{
			ID:            "act_123",
			AccountID:     "123",
			Name:          "Demo Account",
			AccountStatus: 1,
			Currency:      "USD",
			TimezoneName:  "America/New_York",
			Business:      metadomain.Business{ID: "b1", Name: "Demo Business"},
		},
	}

	integrator := New(&config.Config{}, client)

	account, err := integrator.FetchAccount(context.Background(), "123")
	require.NoError(t, err)

	assert.Equal(t, "123", account.ID)
	assert.Equal(t, "Demo Account", account.Name)
	assert.Equal(t, domain.AccountStatusActive, account.Status)
	assert.Equal(t, 1, account.VendorStatus)
	assert.Equal(t, "b1", account.BusinessID)
}

func TestMetaIntegrator_FetchInsights_AggregatesDailyRowsAcrossPages(t *testing.T) {
	client := &fakeClient{
		insightPages: [][]metadomain.Insight{
			{
				{
					CampaignID:  "c1",
					Impressions: "100",
					Clicks:      "10",
					Reach:       "80",
					Spend:       "12.50",
					Actions:     []metadomain.Action{{ActionType: "purchase", Value: "2"}},
				},
			},
			{
				{
					// Same campaign continued on the next page.
					CampaignID:  "c1",
					Impressions: "50",
					Clicks:      "5",
					Reach:       "40",
					Spend:       "7.50",
					Actions:     []metadomain.Action{{ActionType: "purchase", Value: "1"}},
				},
				{
					CampaignID:  "c2",
					Impressions: "not-a-number",
					Clicks:      "1",
				},
				{
					// No campaign ID: the row cannot be attributed and is dropped.
					Impressions: "999",
				},
			},
		},
	}

	integrator := New(&config.Config{}, client)

	since := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, 8, 7, 0, 0, 0, 0, time.UTC)

	pageDoneCalls := 0
	pageDone := func() error {
		pageDoneCalls++
		return nil
	}

	metricsByID, err := integrator.FetchInsights(context.Background(), "123", LevelCampaign, since, until, pageDone)
	require.NoError(t, err)
	require.Len(t, metricsByID, 2)
	assert.Equal(t, 2, pageDoneCalls)

	c1 := metricsByID["c1"]
	assert.Equal(t, 150, c1["impressions"])
	assert.Equal(t, 15, c1["clicks"])
	assert.Equal(t, 120, c1["reach"])
	assert.Equal(t, 20.0, c1["spend"])
	assert.Equal(t, 2, c1["days"])
	assert.Equal(t, map[string]float64{"purchase": 3}, c1["actions"])
	assert.Equal(t, "2026-08-01", c1["date_start"])
	assert.Equal(t, "2026-08-07", c1["date_stop"])

	c2 := metricsByID["c2"]
	assert.Equal(t, 0, c2["impressions"])
	assert.Equal(t, 1, c2["clicks"])
}

func TestMetaIntegrator_ValidateToken(t *testing.T) {
	tests := []struct {
		name    string
		token   *metaclient.TokenInfo
		wantErr error
	}{
		{
			name:  "valid token",
			token: &metaclient.TokenInfo{AppID: "app", IsValid: true, ExpiresAt: time.Now().Add(48 * time.Hour).Unix()},
		},
		{
			name:    "invalid token",
			token:   &metaclient.TokenInfo{AppID: "app", IsValid: false},
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integrator := New(&config.Config{}, &fakeClient{token: tt.token})

			err := integrator.ValidateToken(context.Background())

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFactoryAccount_StatusMapping(t *testing.T) {
	tests := []struct {
		name         string
		vendorStatus int
		expected     domain.AccountStatus
	}{
		{"active", 1, domain.AccountStatusActive},
		{"disabled", 2, domain.AccountStatusDisabled},
		{"unsettled maps to inactive", 3, domain.AccountStatusInactive},
		{"closed maps to inactive", 101, domain.AccountStatusInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := FactoryAccount(&metadomain.AdAccount{
				AccountID:     "123",
				AccountStatus: tt.vendorStatus,
			})
			assert.Equal(t, tt.expected, account.Status)
		})
	}
}
