package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/srpos/backend/internal/domain/settings"
	"github.com/srpos/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingsRepository implements settings.Repository. The whole settings
// record is stored as one JSON document under settings.Key; a missing row
// yields the defaults rather than an error.
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GormSettingsRepository
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// Get loads the settings record, falling back to defaults when unsaved
func (r *GormSettingsRepository) Get(ctx context.Context) (settings.Settings, error) {
	var model models.SettingModel
	if err := r.db.WithContext(ctx).First(&model, "key = ?", settings.Key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return settings.Defaults(), nil
		}
		return settings.Settings{}, err
	}
	s := settings.Defaults()
	if err := json.Unmarshal([]byte(model.Value), &s); err != nil {
		return settings.Settings{}, fmt.Errorf("failed to decode settings record: %w", err)
	}
	return s.Normalized(), nil
}

// Save stores the settings record, replacing any previous value
func (r *GormSettingsRepository) Save(ctx context.Context, s settings.Settings) error {
	raw, err := json.Marshal(s.Normalized())
	if err != nil {
		return fmt.Errorf("failed to encode settings record: %w", err)
	}
	model := models.SettingModel{Key: settings.Key, Value: string(raw)}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&model).Error
}
