package domain

import "time"

// RateLimitSnapshot is the latest observed API usage for an account.
type RateLimitSnapshot struct {
	AccountID             string    `json:"account_id"`
	UsagePct              float64   `json:"usage_pct"`
	CallCount             int       `json:"call_count"`
	TotalCPUTime          int       `json:"total_cputime"`
	TotalTime             int       `json:"total_time"`
	EstimatedTimeToRegain int       `json:"estimated_time_to_regain_access"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// APIMetric logs one outbound Graph API call.
type APIMetric struct {
	ID         int64     `json:"id"`
	AccountID  string    `json:"account_id"`
	Endpoint   string    `json:"endpoint"`
	Method     string    `json:"method"`
	DurationMs int64     `json:"duration_ms"`
	Success    bool      `json:"success"`
	ErrorCode  int       `json:"error_code,omitempty"`
	UsagePct   float64   `json:"usage_pct"`
	CreatedAt  time.Time `json:"created_at"`
}

// CronLog records one scheduled run.
type CronLog struct {
	ID            int64      `json:"id"`
	JobName       string     `json:"job_name"`
	Status        string     `json:"status"`
	AccountsTotal int        `json:"accounts_total"`
	JobsEnqueued  int        `json:"jobs_enqueued"`
	Message       string     `json:"message,omitempty"`
	StartedAt     time.Time  `json:"started_at"`
	FinishedAt    *time.Time `json:"finished_at,omitempty"`
}
