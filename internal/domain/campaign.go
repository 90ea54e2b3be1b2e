package domain

import "time"

// Campaign is the mirrored snapshot of a Meta campaign.
type Campaign struct {
	ID              string         `json:"id"`
	AccountID       string         `json:"account_id"`
	Name            string         `json:"name"`
	Status          string         `json:"status"`
	EffectiveStatus string         `json:"effective_status"`
	Objective       string         `json:"objective"`
	BuyingType      string         `json:"buying_type,omitempty"`
	DailyBudget     string         `json:"daily_budget,omitempty"`
	LifetimeBudget  string         `json:"lifetime_budget,omitempty"`
	StartTime       string         `json:"start_time,omitempty"`
	StopTime        string         `json:"stop_time,omitempty"`
	Metrics         map[string]any `json:"metrics,omitempty"`
	LastUpdated     time.Time      `json:"last_updated"`
	CreatedAt       time.Time      `json:"created_at"`
}
