package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/rfwatson44/MindfulAI-sub001/infrastructure/database/postgres"
	"github.com/rfwatson44/MindfulAI-sub001/internal/domain"
)

type RateLimitRepository interface {
	SaveOrUpdate(snapshot *domain.RateLimitSnapshot) error
}

type rateLimitRepository struct {
	conn *postgres.Connection
}

func NewRateLimitRepository(conn *postgres.Connection) RateLimitRepository {
	return &rateLimitRepository{
		conn: conn,
	}
}

func (r *rateLimitRepository) SaveOrUpdate(snapshot *domain.RateLimitSnapshot) error {
	query := squirrel.StatementBuilder.
		Insert("meta_rate_limits").
		Columns("account_id", "usage_pct", "call_count", "total_cputime", "total_time", "estimated_time_to_regain").
		Values(
			snapshot.AccountID,
			snapshot.UsagePct,
			snapshot.CallCount,
			snapshot.TotalCPUTime,
			snapshot.TotalTime,
			snapshot.EstimatedTimeToRegain,
		).
		Suffix(`
			ON CONFLICT (account_id) DO UPDATE SET
				usage_pct = EXCLUDED.usage_pct,
				call_count = EXCLUDED.call_count,
				total_cputime = EXCLUDED.total_cputime,
				total_time = EXCLUDED.total_time,
				estimated_time_to_regain = EXCLUDED.estimated_time_to_regain,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("executing query: %w", err)
	}

	return nil
}
