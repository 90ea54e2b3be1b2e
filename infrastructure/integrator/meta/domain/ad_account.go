package metadomain

// AdAccount is the Graph API ad account shape.
// ID arrives prefixed ("act_123"), AccountID is the bare numeric string.
type AdAccount struct {
	ID            string   `json:"id"`
	AccountID     string   `json:"account_id"`
	Name          string   `json:"name"`
	AccountStatus int      `json:"account_status"`
	Currency      string   `json:"currency"`
	TimezoneName  string   `json:"timezone_name"`
	Business      Business `json:"business"`
}

type Business struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Vendor account_status values that count as runnable.
// 1 = ACTIVE, 2 = DISABLED, 3 = UNSETTLED, 7 = PENDING_RISK_REVIEW,
// 9 = IN_GRACE_PERIOD, 101 = CLOSED.
func (a *AdAccount) IsActive() bool {
	return a.AccountStatus == 1
}
