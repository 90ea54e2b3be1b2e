package domain

import (
	"encoding/json"
	"time"
)

// AdSet is the mirrored snapshot of a Meta ad set.
type AdSet struct {
	ID               string          `json:"id"`
	AccountID        string          `json:"account_id"`
	CampaignID       string          `json:"campaign_id"`
	Name             string          `json:"name"`
	Status           string          `json:"status"`
	EffectiveStatus  string          `json:"effective_status"`
	OptimizationGoal string          `json:"optimization_goal,omitempty"`
	BillingEvent     string          `json:"billing_event,omitempty"`
	BidStrategy      string          `json:"bid_strategy,omitempty"`
	DailyBudget      string          `json:"daily_budget,omitempty"`
	Targeting        json.RawMessage `json:"targeting,omitempty"`
	Metrics          map[string]any  `json:"metrics,omitempty"`
	LastUpdated      time.Time       `json:"last_updated"`
	CreatedAt        time.Time       `json:"created_at"`
}
