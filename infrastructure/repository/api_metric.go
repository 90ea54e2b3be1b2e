package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/rfwatson44/MindfulAI-sub001/infrastructure/database/postgres"
	"github.com/rfwatson44/MindfulAI-sub001/internal/domain"
)

type APIMetricRepository interface {
	Insert(metric *domain.APIMetric) error
	DeleteOlderThan(days int) (int64, error)
}

type apiMetricRepository struct {
	conn *postgres.Connection
}

func NewAPIMetricRepository(conn *postgres.Connection) APIMetricRepository {
	return &apiMetricRepository{
		conn: conn,
	}
}

func (r *apiMetricRepository) Insert(metric *domain.APIMetric) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("meta_api_metrics").
		Columns("account_id", "endpoint", "method", "duration_ms", "success", "error_code", "usage_pct").
		Values(
			metric.AccountID,
			metric.Endpoint,
			metric.Method,
			metric.DurationMs,
			metric.Success,
			metric.ErrorCode,
			metric.UsagePct,
		).
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

func (r *apiMetricRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete("meta_api_metrics").
		Where(squirrel.Lt{"created_at": cutoffDate}).
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
