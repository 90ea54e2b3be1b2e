package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/rfwatson44/MindfulAI-sub001/infrastructure/database/postgres"
	"github.com/rfwatson44/MindfulAI-sub001/internal/domain"
)

const (
	accountsTable = "accounts a"
)

type AccountRepository interface {
	GetByID(accountID string) (*domain.Account, error)
	List(statuses []domain.AccountStatus) ([]*domain.Account, error)
	SaveOrUpdate(account *domain.Account) error
	TouchLastSynced(accountID string) error
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (r *accountRepository) GetByID(accountID string) (*domain.Account, error) {
	query, args, err := squirrel.
		Select("a.id, a.name, a.status, a.vendor_status, a.currency, a.timezone, a.business_id, a.business_name, a.last_synced_at, a.created_at, a.updated_at").
		From(accountsTable).
		Where(squirrel.Eq{"a.id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	account, err := scanAccount(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning account: %w", err)
	}

	return account, nil
}

func (r *accountRepository) List(statuses []domain.AccountStatus) ([]*domain.Account, error) {
	builder := squirrel.
		Select("a.id, a.name, a.status, a.vendor_status, a.currency, a.timezone, a.business_id, a.business_name, a.last_synced_at, a.created_at, a.updated_at").
		From(accountsTable).
		OrderBy("a.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(statuses) > 0 {
		values := make([]string, 0, len(statuses))
		for _, status := range statuses {
			values = append(values, string(status))
		}
		builder = builder.Where(squirrel.Eq{"a.status": values})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0)
	for rows.Next() {
		account := &domain.Account{}
		err := rows.Scan(
			&account.ID,
			&account.Name,
			&account.Status,
			&account.VendorStatus,
			&account.Currency,
			&account.Timezone,
			&account.BusinessID,
			&account.BusinessName,
			&account.LastSyncedAt,
			&account.CreatedAt,
			&account.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return accounts, nil
}

func (r *accountRepository) SaveOrUpdate(account *domain.Account) error {
	query := squirrel.StatementBuilder.
		Insert("accounts").
		Columns("id", "name", "status", "vendor_status", "currency", "timezone", "business_id", "business_name").
		Values(
			account.ID,
			account.Name,
			account.Status,
			account.VendorStatus,
			account.Currency,
			account.Timezone,
			account.BusinessID,
			account.BusinessName,
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				vendor_status = EXCLUDED.vendor_status,
				currency = EXCLUDED.currency,
				timezone = EXCLUDED.timezone,
				business_id = EXCLUDED.business_id,
				business_name = EXCLUDED.business_name,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
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

func (r *accountRepository) TouchLastSynced(accountID string) error {
	query, args, err := squirrel.
		Update("accounts").
		Set("last_synced_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": accountID}).
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

func scanAccount(row *sql.Row) (*domain.Account, error) {
	account := &domain.Account{}

	err := row.Scan(
		&account.ID,
		&account.Name,
		&account.Status,
		&account.VendorStatus,
		&account.Currency,
		&account.Timezone,
		&account.BusinessID,
		&account.BusinessName,
		&account.LastSyncedAt,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return account, nil
}
