package domain

import "time"

type JobStatus string

const (
	JobStatusQueued     JobStatus = "queued"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
	JobStatusCancelled  JobStatus = "cancelled"
)

type SyncScope string

const (
	SyncScopeFull        SyncScope = "full"
	SyncScopeIncremental SyncScope = "incremental"
)

// IsTerminal reports whether the job reached a final state.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed || s == JobStatusCancelled
}

// BackgroundJob tracks one sync invocation for client polling.
type BackgroundJob struct {
	ID          string         `json:"job_id"`
	AccountID   string         `json:"account_id"`
	Scope       SyncScope      `json:"scope"`
	Status      JobStatus      `json:"status"`
	Progress    int            `json:"progress"`
	Result      map[string]any `json:"result,omitempty"`
	Error       string         `json:"error,omitempty"`
	MessageID   string         `json:"message_id,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	StartedAt   *time.Time     `json:"started_at,omitempty"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
}
