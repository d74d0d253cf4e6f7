package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// appState is a small key/value table for flags the planner remembers between
// runs, such as whether the first-run welcome was already shown.
type appState struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

func (appState) TableName() string { return "app_state" }

const onboardingKey = "onboarding_completed"

// StateRepository persists app-level flags.
type StateRepository struct {
	db *gorm.DB
}

func NewStateRepository(db *gorm.DB) *StateRepository {
	return &StateRepository{db: db}
}

// OnboardingCompleted reports whether the first-run welcome was acknowledged.
func (r *StateRepository) OnboardingCompleted(ctx context.Context) (bool, error) {
	var row appState
	err := r.db.WithContext(ctx).Where("key = ?", onboardingKey).First(&row).Error
	switch {
	case err == nil:
		return row.Value == "true", nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("load state %q: %w", onboardingKey, err)
	}
}

// MarkOnboardingCompleted records that the welcome was shown.
func (r *StateRepository) MarkOnboardingCompleted(ctx context.Context) error {
	row := appState{Key: onboardingKey, Value: "true"}
	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		return fmt.Errorf("save state %q: %w", onboardingKey, err)
	}
	return nil
}
