package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"balance-planner/internal/model"
)

// taskRow is the persisted shape of a task. Position keeps the store's
// insertion order across restarts; the in-memory collection relies on it as
// the stable-sort tiebreak source.
type taskRow struct {
	model.Task `gorm:"embedded"`
	Position   int `gorm:"index"`
}

func (taskRow) TableName() string { return "tasks" }

// TaskRepository persists snapshots of the task collection.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// LoadAll returns every stored task in insertion order.
func (r *TaskRepository) LoadAll(ctx context.Context) ([]model.Task, error) {
	var rows []taskRow
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	tasks := make([]model.Task, len(rows))
	for i, row := range rows {
		tasks[i] = row.Task
	}
	return tasks, nil
}

// ReplaceAll writes the full collection atomically, renumbering positions.
func (r *TaskRepository) ReplaceAll(ctx context.Context, tasks []model.Task) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&taskRow{}).Error; err != nil {
			return err
		}
		for i, task := range tasks {
			row := taskRow{Task: task, Position: i}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}
