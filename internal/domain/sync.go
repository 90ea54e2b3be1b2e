package domain

// SyncRequest is the payload carried by a queued worker message.
type SyncRequest struct {
	JobID     string    `json:"job_id"`
	AccountID string    `json:"account_id"`
	Scope     SyncScope `json:"scope"`
}

// SyncResult accumulates per-level counts for a sync run. Rows already
// upserted before a failure stay in place; FirstError records what stopped
// the run.
type SyncResult struct {
	Campaigns  int    `json:"campaigns"`
	AdSets     int    `json:"ad_sets"`
	Ads        int    `json:"ads"`
	Insights   int    `json:"insights"`
	FirstError string `json:"first_error,omitempty"`
}

// AsMap renders the result for the background_jobs result column.
func (r *SyncResult) AsMap() map[string]any {
	m := map[string]any{
		"campaigns": r.Campaigns,
		"ad_sets":   r.AdSets,
		"ads":       r.Ads,
		"insights":  r.Insights,
	}
	if r.FirstError != "" {
		m["first_error"] = r.FirstError
	}
	return m
}
