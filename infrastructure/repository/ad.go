package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/rfwatson44/MindfulAI-sub001/infrastructure/database/postgres"
	"github.com/rfwatson44/MindfulAI-sub001/internal/domain"
)

type AdRepository interface {
	SaveOrUpdate(ad *domain.Ad) error
	UpdateMetrics(adID string, metrics map[string]any) error
	CountByAccount(accountID string) (int, error)
}

type adRepository struct {
	conn *postgres.Connection
}

func NewAdRepository(conn *postgres.Connection) AdRepository {
	return &adRepository{
		conn: conn,
	}
}

func (r *adRepository) SaveOrUpdate(ad *domain.Ad) error {
	sqlQuery, args, err := saveAdQuery(ad).ToSql()
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

func saveAdQuery(ad *domain.Ad) squirrel.InsertBuilder {
	var creative []byte
	if ad.Creative != nil {
		creative = ad.Creative
	}

	return squirrel.StatementBuilder.
		Insert("meta_ads").
		Columns("id", "account_id", "campaign_id", "ad_set_id", "name", "status", "effective_status", "creative", "last_updated").
		Values(
			ad.ID,
			ad.AccountID,
			ad.CampaignID,
			ad.AdSetID,
			ad.Name,
			ad.Status,
			ad.EffectiveStatus,
			creative,
			ad.LastUpdated,
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				account_id = EXCLUDED.account_id,
				campaign_id = EXCLUDED.campaign_id,
				ad_set_id = EXCLUDED.ad_set_id,
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				effective_status = EXCLUDED.effective_status,
				creative = EXCLUDED.creative,
				last_updated = EXCLUDED.last_updated,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *adRepository) UpdateMetrics(adID string, metrics map[string]any) error {
	return updateMetricsColumn(r.conn, "meta_ads", adID, metrics)
}

func (r *adRepository) CountByAccount(accountID string) (int, error) {
	return countByAccount(r.conn, "meta_ads", accountID)
}
