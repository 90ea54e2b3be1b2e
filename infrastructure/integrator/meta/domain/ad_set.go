package metadomain

import "encoding/json"

type AdSet struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Status           string          `json:"status"`
	EffectiveStatus  string          `json:"effective_status"`
	CampaignID       string          `json:"campaign_id"`
	OptimizationGoal string          `json:"optimization_goal"`
	BillingEvent     string          `json:"billing_event"`
	BidStrategy      string          `json:"bid_strategy"`
	DailyBudget      string          `json:"daily_budget"`
	Targeting        json.RawMessage `json:"targeting"`
}
