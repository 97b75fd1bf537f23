package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/srpos/backend/internal/domain/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGormSettingsRepository_Get(t *testing.T) {
	t.Run("returns defaults when no record is saved", func(t *testing.T) {
		db, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormSettingsRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "settings" WHERE key = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(settings.Key, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		s, err := repo.Get(context.Background())

		require.NoError(t, err)
		assert.Equal(t, settings.Defaults(), s)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("decodes and normalizes the stored record", func(t *testing.T) {
		db, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormSettingsRepository(db)

		// percentage-style opacity is rescaled on load
		raw := `{"company_name":"Sharif Traders","pdf_watermark_opacity":8,"pdf_click_action":"view"}`
		rows := sqlmock.NewRows([]string{"key", "value"}).AddRow(settings.Key, raw)

		mock.ExpectQuery(`SELECT \* FROM "settings" WHERE key = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(settings.Key, 1).
			WillReturnRows(rows)

		s, err := repo.Get(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "Sharif Traders", s.CompanyName)
		assert.InDelta(t, 0.08, s.WatermarkOpacity, 1e-9)
		assert.Equal(t, "view", s.DefaultMode)
		// fields absent from the stored document keep their defaults
		assert.Equal(t, settings.Defaults().ThankYou, s.ThankYou)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("fails on a corrupt record", func(t *testing.T) {
		db, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormSettingsRepository(db)

		rows := sqlmock.NewRows([]string{"key", "value"}).AddRow(settings.Key, "{not json")

		mock.ExpectQuery(`SELECT \* FROM "settings" WHERE key = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(settings.Key, 1).
			WillReturnRows(rows)

		_, err := repo.Get(context.Background())

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormSettingsRepository_Save(t *testing.T) {
	t.Run("upserts the settings record", func(t *testing.T) {
		db, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormSettingsRepository(db)

		mock.ExpectExec(`INSERT INTO "settings" .* ON CONFLICT \("key"\) DO UPDATE SET`).
			WillReturnResult(sqlmock.NewResult(1, 1))

		s := settings.Defaults()
		s.CompanyName = "Sharif Traders"

		err := repo.Save(context.Background(), s)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
