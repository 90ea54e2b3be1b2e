package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfwatson44/MindfulAI-sub001/internal/domain"
)

// A re-run of the sync must leave re-upserted rows with a fresh updated_at,
// so every entity upsert has to bump it in its conflict clause.
func TestSaveQueries_BumpUpdatedAtOnConflict(t *testing.T) {
	tests := []struct {
		name  string
		build func() (string, []any, error)
	}{
		{
			name: "campaign",
			build: func() (string, []any, error) {
				return saveCampaignQuery(&domain.Campaign{ID: "c1", AccountID: "123"}).ToSql()
			},
		},
		{
			name: "ad set",
			build: func() (string, []any, error) {
				return saveAdSetQuery(&domain.AdSet{ID: "as1", AccountID: "123"}).ToSql()
			},
		},
		{
			name: "ad",
			build: func() (string, []any, error) {
				return saveAdQuery(&domain.Ad{ID: "a1", AccountID: "123"}).ToSql()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sqlQuery, args, err := tt.build()
			require.NoError(t, err)
			require.NotEmpty(t, args)

			assert.Contains(t, sqlQuery, "ON CONFLICT (id) DO UPDATE SET")
			assert.Contains(t, sqlQuery, "updated_at = NOW()")
		})
	}
}
