package finance

import "context"

type Repository interface {
	ListExpenses(ctx context.Context, eventID string) ([]Expense, error)
	GetExpenseByID(ctx context.Context, eventID, expenseID string) (*Expense, error)
	CreateExpense(ctx context.Context, e *Expense) error
	UpdateExpense(ctx context.Context, e *Expense) error
	DeleteExpense(ctx context.Context, eventID, expenseID string) (bool, error)

	ListDeposits(ctx context.Context, eventID string) ([]Deposit, error)
	GetDepositByID(ctx context.Context, eventID, depositID string) (*Deposit, error)
	CreateDeposit(ctx context.Context, d *Deposit) error
	UpdateDeposit(ctx context.Context, d *Deposit) error
	DeleteDeposit(ctx context.Context, eventID, depositID string) (bool, error)

	ListBudgets(ctx context.Context, eventID string) ([]Budget, error)
	// UpsertBudget creates or updates the event's budget row for a category
	// as a single conditional write keyed on (event_id, category).
	UpsertBudget(ctx context.Context, b *Budget) error
	DeleteBudget(ctx context.Context, eventID, budgetID string) (bool, error)
}
