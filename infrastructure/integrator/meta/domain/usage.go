package metadomain

// UsageEntry is one entry of the X-Business-Use-Case-Usage header.
type UsageEntry struct {
	Type                        string `json:"type"`
	CallCount                   int    `json:"call_count"`
	TotalCPUTime                int    `json:"total_cputime"`
	TotalTime                   int    `json:"total_time"`
	EstimatedTimeToRegainAccess int    `json:"estimated_time_to_regain_access"`
}

// BusinessUseCaseUsage maps account IDs to their usage entries.
type BusinessUseCaseUsage map[string][]UsageEntry

// AdAccountUsage is the X-Ad-Account-Usage header payload.
type AdAccountUsage struct {
	AccIDUtilPct float64 `json:"acc_id_util_pct"`
}

// MaxPct returns the worst usage percentage across the entry's counters.
func (u UsageEntry) MaxPct() float64 {
	pct := float64(u.CallCount)
	if float64(u.TotalCPUTime) > pct {
		pct = float64(u.TotalCPUTime)
	}
	if float64(u.TotalTime) > pct {
		pct = float64(u.TotalTime)
	}
	return pct
}
