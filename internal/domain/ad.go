package domain

import (
	"encoding/json"
	"time"
)

// Ad is the mirrored snapshot of a Meta ad. The ad's creative is kept
// denormalized on the row since the vendor returns one creative per ad.
type Ad struct {
	ID              string          `json:"id"`
	AccountID       string          `json:"account_id"`
	CampaignID      string          `json:"campaign_id"`
	AdSetID         string          `json:"ad_set_id"`
	Name            string          `json:"name"`
	Status          string          `json:"status"`
	EffectiveStatus string          `json:"effective_status"`
	Creative        json.RawMessage `json:"creative,omitempty"`
	Metrics         map[string]any  `json:"metrics,omitempty"`
	LastUpdated     time.Time       `json:"last_updated"`
	CreatedAt       time.Time       `json:"created_at"`
}
