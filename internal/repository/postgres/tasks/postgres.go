package tasks

import (
	"context"
	"errors"

	tasksdomain "wedding-planner-go/internal/domain/tasks"

	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, eventID string) ([]tasksdomain.Task, error) {
	var items []tasksdomain.Task
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("deadline asc, created_at asc").
		Find(&items).Error
	return items, err
}

func (r *PostgresRepository) GetByID(ctx context.Context, eventID, taskID string) (*tasksdomain.Task, error) {
	var t tasksdomain.Task
	if err := r.db.WithContext(ctx).
		Where("event_id = ? AND id = ?", eventID, taskID).
		First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tasksdomain.ErrTaskNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *PostgresRepository) Create(ctx context.Context, t *tasksdomain.Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *PostgresRepository) Update(ctx context.Context, t *tasksdomain.Task) error {
	return r.db.WithContext(ctx).
		Model(&tasksdomain.Task{}).
		Where("id = ? AND event_id = ?", t.ID, t.EventID).
		Updates(map[string]interface{}{
			"description": t.Description,
			"deadline":    t.Deadline,
			"stage":       t.Stage,
			"responsible": t.Responsible,
			"priority":    t.Priority,
			"completed":   t.Completed,
			"updated_at":  t.UpdatedAt,
		}).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, eventID, taskID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&tasksdomain.Task{}, "event_id = ? AND id = ?", eventID, taskID)
	return result.RowsAffected > 0, result.Error
}
