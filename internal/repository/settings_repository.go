package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"balance-planner/internal/model"
)

// settingsRow stores the single settings record.
type settingsRow struct {
	ID             uint `gorm:"primaryKey"`
	model.Settings `gorm:"embedded"`
}

func (settingsRow) TableName() string { return "settings" }

// SettingsRepository persists the planner settings as one row.
type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Load returns the stored settings; found is false on first run.
func (r *SettingsRepository) Load(ctx context.Context) (model.Settings, bool, error) {
	var row settingsRow
	err := r.db.WithContext(ctx).First(&row).Error
	switch {
	case err == nil:
		return row.Settings, true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return model.Settings{}, false, nil
	default:
		return model.Settings{}, false, fmt.Errorf("load settings: %w", err)
	}
}

// Save upserts the settings record.
func (r *SettingsRepository) Save(ctx context.Context, settings model.Settings) error {
	row := settingsRow{ID: 1, Settings: settings}
	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
