package metrics

import (
	"context"

	financedomain "wedding-planner-go/internal/domain/finance"
	guestsdomain "wedding-planner-go/internal/domain/guests"
	registrydomain "wedding-planner-go/internal/domain/registry"
	tasksdomain "wedding-planner-go/internal/domain/tasks"

	"gorm.io/gorm"
)

// PostgresRepository reads the event's rows for aggregation. Tasks come
// back ordered by deadline so the upcoming-task tie-break follows storage
// order.
type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Tasks(ctx context.Context, eventID string) ([]tasksdomain.Task, error) {
	var items []tasksdomain.Task
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("deadline asc, created_at asc").
		Find(&items).Error
	return items, err
}

func (r *PostgresRepository) Expenses(ctx context.Context, eventID string) ([]financedomain.Expense, error) {
	var items []financedomain.Expense
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Find(&items).Error
	return items, err
}

func (r *PostgresRepository) Deposits(ctx context.Context, eventID string) ([]financedomain.Deposit, error) {
	var items []financedomain.Deposit
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Find(&items).Error
	return items, err
}

func (r *PostgresRepository) Budgets(ctx context.Context, eventID string) ([]financedomain.Budget, error) {
	var items []financedomain.Budget
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("category asc").
		Find(&items).Error
	return items, err
}

func (r *PostgresRepository) Guests(ctx context.Context, eventID string) ([]guestsdomain.Guest, error) {
	var items []guestsdomain.Guest
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("name asc").
		Find(&items).Error
	return items, err
}

func (r *PostgresRepository) RegistryItems(ctx context.Context, eventID string) ([]registrydomain.Item, error) {
	var items []registrydomain.Item
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Find(&items).Error
	return items, err
}
