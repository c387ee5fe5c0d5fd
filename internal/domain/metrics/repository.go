package metrics

import (
	"context"

	"wedding-planner-go/internal/domain/finance"
	"wedding-planner-go/internal/domain/guests"
	"wedding-planner-go/internal/domain/registry"
	"wedding-planner-go/internal/domain/tasks"
)

// Repository loads the collections the metric functions aggregate over,
// each already scoped to one event.
type Repository interface {
	Tasks(ctx context.Context, eventID string) ([]tasks.Task, error)
	Expenses(ctx context.Context, eventID string) ([]finance.Expense, error)
	Deposits(ctx context.Context, eventID string) ([]finance.Deposit, error)
	Budgets(ctx context.Context, eventID string) ([]finance.Budget, error)
	Guests(ctx context.Context, eventID string) ([]guests.Guest, error)
	RegistryItems(ctx context.Context, eventID string) ([]registry.Item, error)
}
