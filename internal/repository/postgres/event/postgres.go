package event

import (
	"context"
	"errors"

	eventdomain "wedding-planner-go/internal/domain/event"

	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, e *eventdomain.Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*eventdomain.Event, error) {
	var e eventdomain.Event
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, eventdomain.ErrEventNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *PostgresRepository) GetByUserID(ctx context.Context, userID string) (*eventdomain.Event, error) {
	var e eventdomain.Event
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, eventdomain.ErrEventNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *PostgresRepository) CountByUserID(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&eventdomain.Event{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *PostgresRepository) Update(ctx context.Context, e *eventdomain.Event) error {
	return r.db.WithContext(ctx).
		Model(&eventdomain.Event{}).
		Where("id = ?", e.ID).
		Updates(map[string]interface{}{
			"couple_name":    e.CoupleName,
			"date":           e.Date,
			"city":           e.City,
			"state":          e.State,
			"ceremony_type":  e.CeremonyType,
			"currency":       e.Currency,
			"financial_goal": e.FinancialGoal,
			"theme":          e.Theme,
			"updated_at":     e.UpdatedAt,
		}).Error
}
