package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/rfwatson44/MindfulAI-sub001/infrastructure/database/postgres"
	"github.com/rfwatson44/MindfulAI-sub001/internal/domain"
)

type AdSetRepository interface {
	SaveOrUpdate(adSet *domain.AdSet) error
	UpdateMetrics(adSetID string, metrics map[string]any) error
	CountByAccount(accountID string) (int, error)
}

type adSetRepository struct {
	conn *postgres.Connection
}

func NewAdSetRepository(conn *postgres.Connection) AdSetRepository {
	return &adSetRepository{
		conn: conn,
	}
}

func (r *adSetRepository) SaveOrUpdate(adSet *domain.AdSet) error {
	sqlQuery, args, err := saveAdSetQuery(adSet).ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("executing query: %w", err)
	}

	return nil
}

func saveAdSetQuery(adSet *domain.AdSet) squirrel.InsertBuilder {
	var targeting []byte
	if adSet.Targeting != nil {
		targeting = adSet.Targeting
	}

	return squirrel.StatementBuilder.
		Insert("meta_ad_sets").
		Columns("id", "account_id", "campaign_id", "name", "status", "effective_status", "optimization_goal", "billing_event", "bid_strategy", "daily_budget", "targeting", "last_updated").
		Values(
			adSet.ID,
			adSet.AccountID,
			adSet.CampaignID,
			adSet.Name,
			adSet.Status,
			adSet.EffectiveStatus,
			adSet.OptimizationGoal,
			adSet.BillingEvent,
			adSet.BidStrategy,
			adSet.DailyBudget,
			targeting,
			adSet.LastUpdated,
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				account_id = EXCLUDED.account_id,
				campaign_id = EXCLUDED.campaign_id,
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				effective_status = EXCLUDED.effective_status,
				optimization_goal = EXCLUDED.optimization_goal,
				billing_event = EXCLUDED.billing_event,
				bid_strategy = EXCLUDED.bid_strategy,
				daily_budget = EXCLUDED.daily_budget,
				targeting = EXCLUDED.targeting,
				last_updated = EXCLUDED.last_updated,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *adSetRepository) UpdateMetrics(adSetID string, metrics map[string]any) error {
	return updateMetricsColumn(r.conn, "meta_ad_sets", adSetID, metrics)
}

func (r *adSetRepository) CountByAccount(accountID string) (int, error) {
	return countByAccount(r.conn, "meta_ad_sets", accountID)
}
