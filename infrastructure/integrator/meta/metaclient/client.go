package metaclient

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"

	metadomain "github.com/rfwatson44/MindfulAI-sub001/infrastructure/integrator/meta/domain"
	"github.com/rfwatson44/MindfulAI-sub001/internal/config"
	"github.com/rfwatson44/MindfulAI-sub001/internal/domain"
)

type Client interface {
	GetAdAccount(ctx context.Context, accountID string) (*metadomain.AdAccount, error)
	ListAdAccountsByBusiness(ctx context.Context, businessID string) ([]metadomain.AdAccount, error)
	ListCampaigns(ctx context.Context, accountID string, fn func([]metadomain.Campaign) error) error
	ListAdSets(ctx context.Context, accountID string, fn func([]metadomain.AdSet) error) error
	ListAds(ctx context.Context, accountID string, fn func([]metadomain.Ad) error) error
	ListInsights(ctx context.Context, accountID, objectID, level string, since, until time.Time, fn func([]metadomain.Insight) error) error
	DebugToken(ctx context.Context) (*TokenInfo, error)
	ExchangeLongLivedToken(ctx context.Context, shortLivedToken string) (string, int64, error)
}

// CallRecorder receives one record per outbound Graph API call plus the
// usage snapshots parsed from the vendor's throttling headers.
type CallRecorder interface {
	RecordCall(ctx context.Context, metric domain.APIMetric)
	RecordUsage(ctx context.Context, snapshot domain.RateLimitSnapshot)
}

// NoopRecorder discards all records.
type NoopRecorder struct{}

func (NoopRecorder) RecordCall(context.Context, domain.APIMetric)          {}
func (NoopRecorder) RecordUsage(context.Context, domain.RateLimitSnapshot) {}

type MetaClient struct {
	cfg        *config.Config
	httpClient *http.Client
	tracker    *UsageTracker
	breaker    *gobreaker.CircuitBreaker[[]byte]
	recorder   CallRecorder
}

func NewClient(cfg *config.Config, tracker *UsageTracker, recorder CallRecorder) Client {
	if recorder == nil {
		recorder = NoopRecorder{}
	}

	settings := gobreaker.Settings{
		Name:    "meta-graph-api",
		Timeout: 60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logrus.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("meta: circuit breaker state changed")
		},
	}

	return &MetaClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		tracker:    tracker,
		breaker:    gobreaker.NewCircuitBreaker[[]byte](settings),
		recorder:   recorder,
	}
}

// appSecretProof is the HMAC-SHA256 of the access token keyed by the app
// secret, required by the Graph API alongside the token itself.
func appSecretProof(accessToken, appSecret string) string {
	mac := hmac.New(sha256.New, []byte(appSecret))
	mac.Write([]byte(accessToken))
	return hex.EncodeToString(mac.Sum(nil))
}

// rateLimitError marks a throttled call so the retry loop can tell it apart
// from permanent failures.
type rateLimitError struct {
	details metadomain.ErrorDetails
}

func (e *rateLimitError) Error() string {
	return fmt.Sprintf("meta: rate limited (code %d): %s", e.details.Code, e.details.Message)
}

// doGet performs one paced, breaker-protected, retry-wrapped GET against the
// Graph API and returns the raw response body.
func (c *MetaClient) doGet(ctx context.Context, accountID, path string, params url.Values) ([]byte, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("access_token", c.cfg.Meta.AccessToken)
	params.Set("appsecret_proof", appSecretProof(c.cfg.Meta.AccessToken, c.cfg.Meta.AppSecret))

	requestURL := fmt.Sprintf("%s/%s?%s", c.cfg.Meta.URL, path, params.Encode())

	policy := backoff.WithContext(backoff.WithMaxRetries(c.retryPolicy(), uint64(c.cfg.RateLimit.MaxRetries)), ctx)

	return backoff.RetryWithData(func() ([]byte, error) {
		if err := c.tracker.Wait(ctx, accountID); err != nil {
			return nil, backoff.Permanent(err)
		}

		body, err := c.executeGet(ctx, accountID, path, requestURL)
		if err != nil {
			if _, throttled := err.(*rateLimitError); throttled {
				logrus.WithFields(logrus.Fields{
					"account_id": accountID,
					"path":       path,
					"error":      err.Error(),
				}).Warn("meta: throttled, backing off")
				return nil, err
			}
			return nil, backoff.Permanent(err)
		}

		return body, nil
	}, policy)
}

func (c *MetaClient) retryPolicy() backoff.BackOff {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = time.Duration(c.cfg.RateLimit.BackoffBaseMs) * time.Millisecond
	policy.MaxInterval = time.Duration(c.cfg.RateLimit.BackoffMaxMs) * time.Millisecond
	policy.MaxElapsedTime = 0 // bounded by WithMaxRetries
	return policy
}

// executeGet runs a single HTTP attempt through the circuit breaker and
// records the call outcome.
func (c *MetaClient) executeGet(ctx context.Context, accountID, path, requestURL string) ([]byte, error) {
	startTime := time.Now()
	errorCode := 0

	body, err := c.breaker.Execute(func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		c.observeUsage(ctx, accountID, resp.Header)

		payload, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusOK {
			errResponse := &metadomain.ErrorResponse{}
			if err := json.Unmarshal(payload, errResponse); err != nil {
				return nil, fmt.Errorf("meta: unexpected status %d: %s", resp.StatusCode, string(payload))
			}

			errorCode = errResponse.Error.Code

			if errResponse.IsRateLimit() {
				return nil, &rateLimitError{details: errResponse.Error}
			}
			if errResponse.IsTokenExpired() {
				return nil, fmt.Errorf("meta: access token expired: %w", errResponse.Err())
			}
			return nil, errResponse.Err()
		}

		return payload, nil
	})

	c.recorder.RecordCall(ctx, domain.APIMetric{
		AccountID:  accountID,
		Endpoint:   path,
		Method:     http.MethodGet,
		DurationMs: time.Since(startTime).Milliseconds(),
		Success:    err == nil,
		ErrorCode:  errorCode,
		UsagePct:   c.tracker.UsagePct(accountID),
	})

	// The breaker returns its own sentinel when open; a throttle error must
	// keep its concrete type for the retry loop.
	if rle, ok := err.(*rateLimitError); ok {
		return nil, rle
	}

	return body, err
}

func (c *MetaClient) observeUsage(ctx context.Context, accountID string, header http.Header) {
	snapshot := c.tracker.Observe(accountID, header)
	if snapshot != nil {
		c.recorder.RecordUsage(ctx, *snapshot)
	}
}
