package meta

import (
	"context"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	metadomain "github.com/rfwatson44/MindfulAI-sub001/infrastructure/integrator/meta/domain"
	"github.com/rfwatson44/MindfulAI-sub001/infrastructure/integrator/meta/metaclient"
	"github.com/rfwatson44/MindfulAI-sub001/internal/config"
	"github.com/rfwatson44/MindfulAI-sub001/internal/domain"
	"github.com/rfwatson44/MindfulAI-sub001/pkg/utils"
)

// Insight levels accepted by FetchInsights.
const (
	LevelAccount  = metadomain.InsightLevelAccount
	LevelCampaign = metadomain.InsightLevelCampaign
	LevelAdSet    = metadomain.InsightLevelAdSet
	LevelAd       = metadomain.InsightLevelAd
)

// Integrator exposes the Graph API hierarchy as domain rows ready to be
// upserted into the mirror tables.
type Integrator interface {
	FetchAccount(ctx context.Context, accountID string) (*domain.Account, error)
	FetchAccountsByBusiness(ctx context.Context, businessID string) ([]*domain.Account, error)
	FetchCampaigns(ctx context.Context, accountID string, fn func([]*domain.Campaign) error) error
	FetchAdSets(ctx context.Context, accountID string, fn func([]*domain.AdSet) error) error
	FetchAds(ctx context.Context, accountID string, fn func([]*domain.Ad) error) error
	FetchInsights(ctx context.Context, accountID, level string, since, until time.Time, pageDone func() error) (map[string]map[string]any, error)
	ValidateToken(ctx context.Context) error
	ExchangeToken(ctx context.Context, shortLivedToken string) (string, int64, error)
}

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *MetaIntegrator) FetchAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.Client.GetAdAccount(ctx, accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("meta: failed to fetch ad account")
		return nil, err
	}

	return FactoryAccount(account), nil
}

func (s *MetaIntegrator) FetchAccountsByBusiness(ctx context.Context, businessID string) ([]*domain.Account, error) {
	vendorAccounts, err := s.Client.ListAdAccountsByBusiness(ctx, businessID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"business_id": businessID,
			"error":       err.Error(),
		}).Error("meta: failed to list business ad accounts")
		return nil, err
	}

	accounts := make([]*domain.Account, 0, len(vendorAccounts))
	for i := range vendorAccounts {
		accounts = append(accounts, FactoryAccount(&vendorAccounts[i]))
	}

	return accounts, nil
}

// FetchCampaigns streams the account's campaigns to fn, one vendor page at
// a time, so callers can upsert and check for cancellation between pages.
func (s *MetaIntegrator) FetchCampaigns(ctx context.Context, accountID string, fn func([]*domain.Campaign) error) error {
	return s.Client.ListCampaigns(ctx, accountID, func(vendorCampaigns []metadomain.Campaign) error {
		campaigns := make([]*domain.Campaign, 0, len(vendorCampaigns))
		for i := range vendorCampaigns {
			campaigns = append(campaigns, FactoryCampaign(accountID, &vendorCampaigns[i]))
		}
		return fn(campaigns)
	})
}

func (s *MetaIntegrator) FetchAdSets(ctx context.Context, accountID string, fn func([]*domain.AdSet) error) error {
	return s.Client.ListAdSets(ctx, accountID, func(vendorAdSets []metadomain.AdSet) error {
		adSets := make([]*domain.AdSet, 0, len(vendorAdSets))
		for i := range vendorAdSets {
			adSets = append(adSets, FactoryAdSet(accountID, &vendorAdSets[i]))
		}
		return fn(adSets)
	})
}

func (s *MetaIntegrator) FetchAds(ctx context.Context, accountID string, fn func([]*domain.Ad) error) error {
	return s.Client.ListAds(ctx, accountID, func(vendorAds []metadomain.Ad) error {
		ads := make([]*domain.Ad, 0, len(vendorAds))
		for i := range vendorAds {
			ad, err := FactoryAd(accountID, &vendorAds[i])
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"account_id": accountID,
					"ad_id":      vendorAds[i].ID,
					"error":      err.Error(),
				}).Warn("meta: skipping ad with unserializable creative")
				continue
			}
			ads = append(ads, ad)
		}
		return fn(ads)
	})
}

// FetchInsights returns, per object ID at the requested level, the metrics
// aggregated across the daily rows of the date range. An object's rows can
// span page boundaries, so aggregation buffers the whole level; pageDone
// runs after each vendor page and a non-nil error from it aborts the walk.
func (s *MetaIntegrator) FetchInsights(ctx context.Context, accountID, level string, since, until time.Time, pageDone func() error) (map[string]map[string]any, error) {
	metricsByObject := make(map[string]map[string]any)

	err := s.Client.ListInsights(ctx, accountID, accountID, level, since, until, func(rows []metadomain.Insight) error {
		for i := range rows {
			row := &rows[i]

			objectID := row.ObjectID(level)
			if objectID == "" {
				continue
			}

			metrics, ok := metricsByObject[objectID]
			if !ok {
				metrics = newMetricsBag(since, until)
				metricsByObject[objectID] = metrics
			}

			accumulateInsight(metrics, row)
		}

		if pageDone != nil {
			return pageDone()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, metrics := range metricsByObject {
		metrics["spend"] = utils.RoundWithTwoDecimalPlace(metrics["spend"].(float64))
	}

	return metricsByObject, nil
}

// ValidateToken checks the configured access token before a sync run.
func (s *MetaIntegrator) ValidateToken(ctx context.Context) error {
	info, err := s.Client.DebugToken(ctx)
	if err != nil {
		return err
	}

	if !info.IsValid {
		logrus.WithField("app_id", info.AppID).Error("meta: configured access token is not valid")
		return ErrInvalidToken
	}

	if info.ExpiresAt > 0 {
		expiry := time.Unix(info.ExpiresAt, 0)
		logrus.WithField("expires_at", expiry.Format(time.RFC3339)).Debug("meta: access token validated")
		if time.Until(expiry) < 24*time.Hour {
			logrus.WithField("expires_at", expiry.Format(time.RFC3339)).Warn("meta: access token expires within 24h")
		}
	}

	return nil
}

// ExchangeToken trades a short-lived user token for a long-lived one and
// returns it together with its lifetime in seconds.
func (s *MetaIntegrator) ExchangeToken(ctx context.Context, shortLivedToken string) (string, int64, error) {
	token, expiresIn, err := s.Client.ExchangeLongLivedToken(ctx, shortLivedToken)
	if err != nil {
		logrus.WithError(err).Error("meta: token exchange failed")
		return "", 0, err
	}

	logrus.WithField("expires_in", expiresIn).Info("meta: exchanged short-lived token")
	return token, expiresIn, nil
}

func newMetricsBag(since, until time.Time) map[string]any {
	return map[string]any{
		"date_start":  since.Format(time.DateOnly),
		"date_stop":   until.Format(time.DateOnly),
		"impressions": 0,
		"clicks":      0,
		"reach":       0,
		"spend":       0.0,
		"days":        0,
		"actions":     map[string]float64{},
	}
}

// accumulateInsight folds one daily row into the object's metrics bag.
func accumulateInsight(metrics map[string]any, row *metadomain.Insight) {
	metrics["impressions"] = metrics["impressions"].(int) + atoiSafe(row.Impressions)
	metrics["clicks"] = metrics["clicks"].(int) + atoiSafe(row.Clicks)
	metrics["reach"] = metrics["reach"].(int) + atoiSafe(row.Reach)
	metrics["spend"] = metrics["spend"].(float64) + atofSafe(row.Spend)
	metrics["days"] = metrics["days"].(int) + 1

	actions := metrics["actions"].(map[string]float64)
	for _, action := range row.Actions {
		actions[action.ActionType] += atofSafe(action.Value)
	}
}

func atoiSafe(value string) int {
	if value == "" {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		logrus.WithField("value", value).Debug("meta: non-numeric insight value")
		return 0
	}
	return n
}

func atofSafe(value string) float64 {
	if value == "" {
		return 0
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithField("value", value).Debug("meta: non-numeric insight value")
		return 0
	}
	return f
}
