package metadomain

type Campaign struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	EffectiveStatus string `json:"effective_status"`
	Objective       string `json:"objective"`
	BuyingType      string `json:"buying_type"`
	DailyBudget     string `json:"daily_budget"`
	LifetimeBudget  string `json:"lifetime_budget"`
	StartTime       string `json:"start_time"`
	StopTime        string `json:"stop_time"`
	CreatedTime     string `json:"created_time"`
	UpdatedTime     string `json:"updated_time"`
}
