package metadomain

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// Insight is one row of the /insights edge. Numeric fields arrive as
// strings, mirroring the wire format. The object ID fields are filled
// according to the requested level.
type Insight struct {
	DateStart         string   `json:"date_start"`
	DateStop          string   `json:"date_stop"`
	CampaignID        string   `json:"campaign_id,omitempty"`
	AdsetID           string   `json:"adset_id,omitempty"`
	AdID              string   `json:"ad_id,omitempty"`
	Impressions       string   `json:"impressions"`
	Clicks            string   `json:"clicks"`
	Spend             string   `json:"spend"`
	Reach             string   `json:"reach"`
	Frequency         string   `json:"frequency"`
	CTR               string   `json:"ctr"`
	CPC               string   `json:"cpc"`
	CPM               string   `json:"cpm"`
	Actions           []Action `json:"actions"`
	CostPerActionType []Action `json:"cost_per_action_type"`
}

// Insight levels accepted by the Graph API.
const (
	InsightLevelAccount  = "account"
	InsightLevelCampaign = "campaign"
	InsightLevelAdSet    = "adset"
	InsightLevelAd       = "ad"
)

// ObjectID returns the entity ID matching the requested level.
func (i *Insight) ObjectID(level string) string {
	switch level {
	case InsightLevelCampaign:
		return i.CampaignID
	case InsightLevelAdSet:
		return i.AdsetID
	case InsightLevelAd:
		return i.AdID
	default:
		return ""
	}
}
