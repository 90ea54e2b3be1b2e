package repository

import (
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/rfwatson44/MindfulAI-sub001/infrastructure/database/postgres"
)

// updateMetricsColumn writes the JSONB metrics bag of one mirror row.
func updateMetricsColumn(conn *postgres.Connection, table, id string, metrics map[string]any) error {
	metricsJSON, err := json.Marshal(metrics)
	if err != nil {
		return fmt.Errorf("serializing metrics to JSON: %w", err)
	}

	query, args, err := squirrel.
		Update(table).
		Set("metrics", metricsJSON).
		Set("last_updated", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	_, err = conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("executing query: %w", err)
	}

	return nil
}

func countByAccount(conn *postgres.Connection, table, accountID string) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"account_id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building query: %w", err)
	}

	var count int
	if err := conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("scanning count: %w", err)
	}

	return count, nil
}
