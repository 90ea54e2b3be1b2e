package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/rfwatson44/MindfulAI-sub001/infrastructure/database/postgres"
	"github.com/rfwatson44/MindfulAI-sub001/internal/domain"
)

type CronLogRepository interface {
	Start(jobName string) (int64, error)
	Finish(id int64, status string, accountsTotal, jobsEnqueued int, message string) error
	ListRecent(limit int) ([]*domain.CronLog, error)
}

type cronLogRepository struct {
	conn *postgres.Connection
}

func NewCronLogRepository(conn *postgres.Connection) CronLogRepository {
	return &cronLogRepository{
		conn: conn,
	}
}

func (r *cronLogRepository) Start(jobName string) (int64, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert("meta_cron_logs").
		Columns("job_name", "status", "started_at").
		Values(jobName, "running", squirrel.Expr("NOW()")).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building query: %w", err)
	}

	var id int64
	if err := r.conn.QueryRow(query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("inserting cron log: %w", err)
	}

	return id, nil
}

func (r *cronLogRepository) Finish(id int64, status string, accountsTotal, jobsEnqueued int, message string) error {
	query, args, err := squirrel.
		Update("meta_cron_logs").
		Set("status", status).
		Set("accounts_total", accountsTotal).
		Set("jobs_enqueued", jobsEnqueued).
		Set("message", message).
		Set("finished_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
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

func (r *cronLogRepository) ListRecent(limit int) ([]*domain.CronLog, error) {
	query, args, err := squirrel.
		Select("cl.id, cl.job_name, cl.status, cl.accounts_total, cl.jobs_enqueued, cl.message, cl.started_at, cl.finished_at").
		From("meta_cron_logs cl").
		OrderBy("cl.started_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	logs := make([]*domain.CronLog, 0)
	for rows.Next() {
		entry := &domain.CronLog{}
		err := rows.Scan(
			&entry.ID,
			&entry.JobName,
			&entry.Status,
			&entry.AccountsTotal,
			&entry.JobsEnqueued,
			&entry.Message,
			&entry.StartedAt,
			&entry.FinishedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning cron log: %w", err)
		}
		logs = append(logs, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return logs, nil
}
