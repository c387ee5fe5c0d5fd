package finance

import (
	"context"
	"errors"

	financedomain "wedding-planner-go/internal/domain/finance"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListExpenses(ctx context.Context, eventID string) ([]financedomain.Expense, error) {
	var items []financedomain.Expense
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at desc").
		Find(&items).Error
	return items, err
}

func (r *PostgresRepository) GetExpenseByID(ctx context.Context, eventID, expenseID string) (*financedomain.Expense, error) {
	var e financedomain.Expense
	if err := r.db.WithContext(ctx).
		Where("event_id = ? AND id = ?", eventID, expenseID).
		First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, financedomain.ErrExpenseNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *PostgresRepository) CreateExpense(ctx context.Context, e *financedomain.Expense) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *PostgresRepository) UpdateExpense(ctx context.Context, e *financedomain.Expense) error {
	return r.db.WithContext(ctx).
		Model(&financedomain.Expense{}).
		Where("id = ? AND event_id = ?", e.ID, e.EventID).
		Updates(map[string]interface{}{
			"name":            e.Name,
			"category":        e.Category,
			"estimated_value": e.EstimatedValue,
			"actual_value":    e.ActualValue,
			"paid_by":         e.PaidBy,
			"payment_status":  e.PaymentStatus,
			"updated_at":      e.UpdatedAt,
		}).Error
}

func (r *PostgresRepository) DeleteExpense(ctx context.Context, eventID, expenseID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&financedomain.Expense{}, "event_id = ? AND id = ?", eventID, expenseID)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) ListDeposits(ctx context.Context, eventID string) ([]financedomain.Deposit, error) {
	var items []financedomain.Deposit
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("date desc, created_at desc").
		Find(&items).Error
	return items, err
}

func (r *PostgresRepository) GetDepositByID(ctx context.Context, eventID, depositID string) (*financedomain.Deposit, error) {
	var d financedomain.Deposit
	if err := r.db.WithContext(ctx).
		Where("event_id = ? AND id = ?", eventID, depositID).
		First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, financedomain.ErrDepositNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *PostgresRepository) CreateDeposit(ctx context.Context, d *financedomain.Deposit) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *PostgresRepository) UpdateDeposit(ctx context.Context, d *financedomain.Deposit) error {
	return r.db.WithContext(ctx).
		Model(&financedomain.Deposit{}).
		Where("id = ? AND event_id = ?", d.ID, d.EventID).
		Updates(map[string]interface{}{
			"description": d.Description,
			"amount":      d.Amount,
			"paid_by":     d.PaidBy,
			"date":        d.Date,
		}).Error
}

func (r *PostgresRepository) DeleteDeposit(ctx context.Context, eventID, depositID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&financedomain.Deposit{}, "event_id = ? AND id = ?", eventID, depositID)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) ListBudgets(ctx context.Context, eventID string) ([]financedomain.Budget, error) {
	var items []financedomain.Budget
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("category asc").
		Find(&items).Error
	return items, err
}

// UpsertBudget relies on the (event_id, category) unique index so two
// concurrent saves for the same category cannot create duplicate rows. The
// struct is re-read afterwards to pick up the surviving row's id.
func (r *PostgresRepository) UpsertBudget(ctx context.Context, b *financedomain.Budget) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}, {Name: "category"}},
			DoUpdates: clause.AssignmentColumns([]string{"amount", "description", "updated_at"}),
		}).
		Create(b).Error
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("event_id = ? AND category = ?", b.EventID, b.Category).
		First(b).Error
}

func (r *PostgresRepository) DeleteBudget(ctx context.Context, eventID, budgetID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&financedomain.Budget{}, "event_id = ? AND id = ?", eventID, budgetID)
	return result.RowsAffected > 0, result.Error
}
