package repository

import (
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/rfwatson44/MindfulAI-sub001/infrastructure/database/postgres"
	"github.com/rfwatson44/MindfulAI-sub001/internal/domain"
)

const (
	campaignsTable = "meta_campaigns mc"
)

type CampaignRepository interface {
	SaveOrUpdate(campaign *domain.Campaign) error
	UpdateMetrics(campaignID string, metrics map[string]any) error
	ListByAccount(accountID string) ([]*domain.Campaign, error)
	CountByAccount(accountID string) (int, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) SaveOrUpdate(campaign *domain.Campaign) error {
	sqlQuery, args, err := saveCampaignQuery(campaign).ToSql()
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

func saveCampaignQuery(campaign *domain.Campaign) squirrel.InsertBuilder {
	return squirrel.StatementBuilder.
		Insert("meta_campaigns").
		Columns("id", "account_id", "name", "status", "effective_status", "objective", "buying_type", "daily_budget", "lifetime_budget", "start_time", "stop_time", "last_updated").
		Values(
			campaign.ID,
			campaign.AccountID,
			campaign.Name,
			campaign.Status,
			campaign.EffectiveStatus,
			campaign.Objective,
			campaign.BuyingType,
			campaign.DailyBudget,
			campaign.LifetimeBudget,
			campaign.StartTime,
			campaign.StopTime,
			campaign.LastUpdated,
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				account_id = EXCLUDED.account_id,
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				effective_status = EXCLUDED.effective_status,
				objective = EXCLUDED.objective,
				buying_type = EXCLUDED.buying_type,
				daily_budget = EXCLUDED.daily_budget,
				lifetime_budget = EXCLUDED.lifetime_budget,
				start_time = EXCLUDED.start_time,
				stop_time = EXCLUDED.stop_time,
				last_updated = EXCLUDED.last_updated,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *campaignRepository) UpdateMetrics(campaignID string, metrics map[string]any) error {
	return updateMetricsColumn(r.conn, "meta_campaigns", campaignID, metrics)
}

func (r *campaignRepository) ListByAccount(accountID string) ([]*domain.Campaign, error) {
	query, args, err := squirrel.
		Select("mc.id, mc.account_id, mc.name, mc.status, mc.effective_status, mc.objective, mc.buying_type, mc.daily_budget, mc.lifetime_budget, mc.start_time, mc.stop_time, mc.metrics, mc.last_updated, mc.created_at").
		From(campaignsTable).
		Where(squirrel.Eq{"mc.account_id": accountID}).
		OrderBy("mc.name ASC").
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

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign := &domain.Campaign{}
		var metricsJSON []byte

		err := rows.Scan(
			&campaign.ID,
			&campaign.AccountID,
			&campaign.Name,
			&campaign.Status,
			&campaign.EffectiveStatus,
			&campaign.Objective,
			&campaign.BuyingType,
			&campaign.DailyBudget,
			&campaign.LifetimeBudget,
			&campaign.StartTime,
			&campaign.StopTime,
			&metricsJSON,
			&campaign.LastUpdated,
			&campaign.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning campaign: %w", err)
		}

		if metricsJSON != nil {
			if err := json.Unmarshal(metricsJSON, &campaign.Metrics); err != nil {
				return nil, fmt.Errorf("deserializing campaign metrics: %w", err)
			}
		}

		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return campaigns, nil
}

func (r *campaignRepository) CountByAccount(accountID string) (int, error) {
	return countByAccount(r.conn, "meta_campaigns", accountID)
}
