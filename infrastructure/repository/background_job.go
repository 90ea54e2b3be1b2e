package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/rfwatson44/MindfulAI-sub001/infrastructure/database/postgres"
	"github.com/rfwatson44/MindfulAI-sub001/internal/domain"
)

const (
	backgroundJobsTable = "background_jobs bj"
)

type BackgroundJobRepository interface {
	Create(job *domain.BackgroundJob) error
	GetByID(jobID string) (*domain.BackgroundJob, error)
	SetMessageID(jobID, messageID string) error
	MarkProcessing(jobID string) error
	UpdateProgress(jobID string, progress int) error
	Complete(jobID string, result map[string]any) error
	Fail(jobID, errMsg string, result map[string]any) error
	Cancel(jobID string) (bool, error)
	FailStale(olderThan time.Duration) (int64, error)
}

type backgroundJobRepository struct {
	conn *postgres.Connection
}

func NewBackgroundJobRepository(conn *postgres.Connection) BackgroundJobRepository {
	return &backgroundJobRepository{
		conn: conn,
	}
}

func (r *backgroundJobRepository) Create(job *domain.BackgroundJob) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("background_jobs").
		Columns("job_id", "account_id", "scope", "status", "progress").
		Values(job.ID, job.AccountID, job.Scope, job.Status, job.Progress).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("executing query: %w", err)
	}

	return nil
}

func (r *backgroundJobRepository) GetByID(jobID string) (*domain.BackgroundJob, error) {
	query, args, err := squirrel.
		Select("bj.job_id, bj.account_id, bj.scope, bj.status, bj.progress, bj.result, bj.error, bj.message_id, bj.created_at, bj.updated_at, bj.started_at, bj.completed_at").
		From(backgroundJobsTable).
		Where(squirrel.Eq{"bj.job_id": jobID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	job := &domain.BackgroundJob{}
	var resultJSON []byte
	var errMsg, messageID sql.NullString

	err = row.Scan(
		&job.ID,
		&job.AccountID,
		&job.Scope,
		&job.Status,
		&job.Progress,
		&resultJSON,
		&errMsg,
		&messageID,
		&job.CreatedAt,
		&job.UpdatedAt,
		&job.StartedAt,
		&job.CompletedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning background job: %w", err)
	}

	job.Error = errMsg.String
	job.MessageID = messageID.String

	if resultJSON != nil {
		if err := json.Unmarshal(resultJSON, &job.Result); err != nil {
			return nil, fmt.Errorf("deserializing job result: %w", err)
		}
	}

	return job, nil
}

func (r *backgroundJobRepository) SetMessageID(jobID, messageID string) error {
	return r.update(jobID, map[string]interface{}{
		"message_id": messageID,
	})
}

func (r *backgroundJobRepository) MarkProcessing(jobID string) error {
	return r.update(jobID, map[string]interface{}{
		"status":     domain.JobStatusProcessing,
		"started_at": squirrel.Expr("NOW()"),
	})
}

func (r *backgroundJobRepository) UpdateProgress(jobID string, progress int) error {
	return r.update(jobID, map[string]interface{}{
		"progress": progress,
	})
}

func (r *backgroundJobRepository) Complete(jobID string, result map[string]any) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("serializing job result: %w", err)
	}

	return r.update(jobID, map[string]interface{}{
		"status":       domain.JobStatusCompleted,
		"progress":     100,
		"result":       resultJSON,
		"completed_at": squirrel.Expr("NOW()"),
	})
}

func (r *backgroundJobRepository) Fail(jobID, errMsg string, result map[string]any) error {
	values := map[string]interface{}{
		"status":       domain.JobStatusFailed,
		"error":        errMsg,
		"completed_at": squirrel.Expr("NOW()"),
	}

	if result != nil {
		resultJSON, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("serializing job result: %w", err)
		}
		values["result"] = resultJSON
	}

	return r.update(jobID, values)
}

// Cancel flips a queued or processing job to cancelled. It reports whether
// a row was actually updated, so callers can distinguish a finished job.
func (r *backgroundJobRepository) Cancel(jobID string) (bool, error) {
	query, args, err := squirrel.
		Update("background_jobs").
		Set("status", domain.JobStatusCancelled).
		Set("completed_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"job_id": jobID}).
		Where(squirrel.Eq{"status": []domain.JobStatus{domain.JobStatusQueued, domain.JobStatusProcessing}}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("building query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("executing query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// FailStale marks processing jobs whose last update is older than the
// threshold as failed. Serverless workers can die without reporting back.
func (r *backgroundJobRepository) FailStale(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)

	query, args, err := squirrel.
		Update("background_jobs").
		Set("status", domain.JobStatusFailed).
		Set("error", "worker stopped reporting progress").
		Set("completed_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": domain.JobStatusProcessing}).
		Where(squirrel.Lt{"updated_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("executing query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading rows affected: %w", err)
	}

	return rowsAffected, nil
}

func (r *backgroundJobRepository) update(jobID string, values map[string]interface{}) error {
	values["updated_at"] = squirrel.Expr("NOW()")

	query, args, err := squirrel.
		Update("background_jobs").
		SetMap(values).
		Where(squirrel.Eq{"job_id": jobID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("executing query: %w", err)
	}

	return nil
}
