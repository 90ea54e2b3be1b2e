package metaclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	metadomain "github.com/rfwatson44/MindfulAI-sub001/infrastructure/integrator/meta/domain"
)

const (
	accountFields  = "id,account_id,name,account_status,currency,timezone_name,business"
	campaignFields = "id,name,status,effective_status,objective,buying_type,daily_budget,lifetime_budget,start_time,stop_time,created_time,updated_time"
	adSetFields    = "id,name,status,effective_status,campaign_id,optimization_goal,billing_event,bid_strategy,daily_budget,targeting"
	adFields       = "id,name,status,effective_status,adset_id,campaign_id,creative{id,name,title,body,image_url,thumbnail_url,object_story_id,call_to_action_type}"
	insightFields  = "date_start,date_stop,impressions,clicks,spend,reach,frequency,ctr,cpc,cpm,actions,cost_per_action_type"
)

// GetAdAccount fetches the metadata of a single ad account.
func (c *MetaClient) GetAdAccount(ctx context.Context, accountID string) (*metadomain.AdAccount, error) {
	params := url.Values{}
	params.Set("fields", accountFields)

	body, err := c.doGet(ctx, accountID, "act_"+accountID, params)
	if err != nil {
		return nil, err
	}

	account := &metadomain.AdAccount{}
	if err := json.Unmarshal(body, account); err != nil {
		return nil, fmt.Errorf("meta: decoding ad account: %w", err)
	}

	account.ID = strings.TrimPrefix(account.ID, "act_")
	if account.AccountID == "" {
		account.AccountID = account.ID
	}

	return account, nil
}

// ListAdAccountsByBusiness lists the owned ad accounts of a business.
func (c *MetaClient) ListAdAccountsByBusiness(ctx context.Context, businessID string) ([]metadomain.AdAccount, error) {
	params := url.Values{}
	params.Set("fields", accountFields)

	path := fmt.Sprintf("%s/owned_ad_accounts", businessID)
	items, err := c.getAllPages(ctx, businessID, path, params)
	if err != nil {
		return nil, err
	}

	accounts, err := decodeItems[metadomain.AdAccount](items, path)
	if err != nil {
		return nil, err
	}

	for i := range accounts {
		accounts[i].ID = strings.TrimPrefix(accounts[i].ID, "act_")
		if accounts[i].AccountID == "" {
			accounts[i].AccountID = accounts[i].ID
		}
	}

	return accounts, nil
}

// ListCampaigns streams every campaign of an ad account, one page per call
// to fn.
func (c *MetaClient) ListCampaigns(ctx context.Context, accountID string, fn func([]metadomain.Campaign) error) error {
	params := url.Values{}
	params.Set("fields", campaignFields)

	path := fmt.Sprintf("act_%s/campaigns", accountID)
	return c.forEachPage(ctx, accountID, path, params, func(items []json.RawMessage) error {
		campaigns, err := decodeItems[metadomain.Campaign](items, path)
		if err != nil {
			return err
		}
		return fn(campaigns)
	})
}

// ListAdSets streams every ad set of an ad account, one page per call to fn.
func (c *MetaClient) ListAdSets(ctx context.Context, accountID string, fn func([]metadomain.AdSet) error) error {
	params := url.Values{}
	params.Set("fields", adSetFields)

	path := fmt.Sprintf("act_%s/adsets", accountID)
	return c.forEachPage(ctx, accountID, path, params, func(items []json.RawMessage) error {
		adSets, err := decodeItems[metadomain.AdSet](items, path)
		if err != nil {
			return err
		}
		return fn(adSets)
	})
}

// ListAds streams every ad of an ad account with its creative expanded, one
// page per call to fn.
func (c *MetaClient) ListAds(ctx context.Context, accountID string, fn func([]metadomain.Ad) error) error {
	params := url.Values{}
	params.Set("fields", adFields)

	path := fmt.Sprintf("act_%s/ads", accountID)
	return c.forEachPage(ctx, accountID, path, params, func(items []json.RawMessage) error {
		ads, err := decodeItems[metadomain.Ad](items, path)
		if err != nil {
			return err
		}
		return fn(ads)
	})
}

// ListInsights streams daily insight rows for an object at the given level
// (account, campaign, adset or ad) across the date range, one page per call
// to fn.
func (c *MetaClient) ListInsights(ctx context.Context, accountID, objectID, level string, since, until time.Time, fn func([]metadomain.Insight) error) error {
	if level == "" {
		return errors.New("meta: insight level is required")
	}

	fields := insightFields
	switch level {
	case metadomain.InsightLevelCampaign:
		fields += ",campaign_id"
	case metadomain.InsightLevelAdSet:
		fields += ",adset_id"
	case metadomain.InsightLevelAd:
		fields += ",ad_id"
	}

	params := url.Values{}
	params.Set("fields", fields)
	params.Set("level", level)
	params.Set("time_increment", "1")
	params.Set("time_range", fmt.Sprintf(`{"since":"%s","until":"%s"}`,
		since.Format(time.DateOnly), until.Format(time.DateOnly)))

	// Ad-account nodes are only addressable as act_<id>, whatever the
	// breakdown level of the query.
	prefix := objectID
	if level == metadomain.InsightLevelAccount || objectID == accountID {
		prefix = "act_" + objectID
	}

	path := fmt.Sprintf("%s/insights", prefix)
	return c.forEachPage(ctx, accountID, path, params, func(items []json.RawMessage) error {
		insights, err := decodeItems[metadomain.Insight](items, path)
		if err != nil {
			return err
		}
		return fn(insights)
	})
}
