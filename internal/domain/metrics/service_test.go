package metrics

import (
	"context"
	"testing"
	"time"

	"wedding-planner-go/internal/domain/event"
	"wedding-planner-go/internal/domain/finance"
	"wedding-planner-go/internal/domain/guests"
	"wedding-planner-go/internal/domain/registry"
	"wedding-planner-go/internal/domain/tasks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMetricsRepo struct {
	tasks    []tasks.Task
	expenses []finance.Expense
	deposits []finance.Deposit
	budgets  []finance.Budget
	guests   []guests.Guest
	registry []registry.Item
}

func (f *fakeMetricsRepo) Tasks(ctx context.Context, eventID string) ([]tasks.Task, error) {
	return f.tasks, nil
}

func (f *fakeMetricsRepo) Expenses(ctx context.Context, eventID string) ([]finance.Expense, error) {
	return f.expenses, nil
}

func (f *fakeMetricsRepo) Deposits(ctx context.Context, eventID string) ([]finance.Deposit, error) {
	return f.deposits, nil
}

func (f *fakeMetricsRepo) Budgets(ctx context.Context, eventID string) ([]finance.Budget, error) {
	return f.budgets, nil
}

func (f *fakeMetricsRepo) Guests(ctx context.Context, eventID string) ([]guests.Guest, error) {
	return f.guests, nil
}

func (f *fakeMetricsRepo) RegistryItems(ctx context.Context, eventID string) ([]registry.Item, error) {
	return f.registry, nil
}

func TestDashboardAggregatesAllSections(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	repo := &fakeMetricsRepo{
		tasks: []tasks.Task{
			{ID: "t1", Deadline: now.AddDate(0, 0, 3)},
			{ID: "t2", Deadline: now.AddDate(0, 0, 30), Completed: true},
		},
		expenses: []finance.Expense{{Category: "venue", EstimatedValue: 5000}},
		deposits: []finance.Deposit{{Amount: 10000}},
		guests:   []guests.Guest{{Name: "Ana", Companions: 1, Status: guests.StatusConfirmed}},
		registry: []registry.Item{{Status: registry.StatusPurchased}},
	}

	svc := NewService(repo)
	svc.now = func() time.Time { return now }

	e := &event.Event{
		ID:            "evt-1",
		CoupleName:    "Ana & Bruno",
		Date:          time.Date(2027, 5, 15, 0, 0, 0, 0, time.UTC),
		Currency:      "R$",
		FinancialGoal: 50000,
	}

	dashboard, err := svc.Dashboard(context.Background(), e)
	require.NoError(t, err)

	assert.Equal(t, 2, dashboard.Tasks.Total)
	assert.InDelta(t, 50, dashboard.Tasks.Progress, 1e-9)

	require.Len(t, dashboard.Upcoming, 1)
	assert.Equal(t, "t1", dashboard.Upcoming[0].Task.ID)
	assert.Equal(t, UrgencyUrgent, dashboard.Upcoming[0].Urgency)

	assert.InDelta(t, 10000, dashboard.Financial.TotalDeposits, 1e-9)
	assert.InDelta(t, 20, dashboard.Financial.Progress, 1e-9)

	assert.Equal(t, 2, dashboard.Guests.Headcount)
	assert.InDelta(t, 100, dashboard.Registry.Progress, 1e-9)

	assert.Equal(t, 256, dashboard.DaysToEvent)
	assert.Equal(t, "Ana & Bruno", dashboard.CoupleName)
	assert.Equal(t, "R$", dashboard.Currency)
}

func TestDashboardIdempotent(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	repo := &fakeMetricsRepo{
		tasks:    []tasks.Task{{ID: "t1", Deadline: now.AddDate(0, 0, 3)}},
		deposits: []finance.Deposit{{Amount: 500}},
	}

	svc := NewService(repo)
	svc.now = func() time.Time { return now }

	e := &event.Event{ID: "evt-1", Date: now.AddDate(0, 1, 0), FinancialGoal: 1000}

	first, err := svc.Dashboard(context.Background(), e)
	require.NoError(t, err)
	second, err := svc.Dashboard(context.Background(), e)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFinancialReport(t *testing.T) {
	repo := &fakeMetricsRepo{
		expenses: []finance.Expense{
			{Category: "food", EstimatedValue: 1000, ActualValue: floatPtr(1200)},
			{Category: "music", EstimatedValue: 800},
		},
		deposits: []finance.Deposit{{Amount: 2000}},
		budgets:  []finance.Budget{{ID: "b1", Category: "food", Amount: 1000}},
	}

	svc := NewService(repo)
	e := &event.Event{ID: "evt-1", FinancialGoal: 10000}

	summary, totals, variance, err := svc.FinancialReport(context.Background(), e)
	require.NoError(t, err)

	assert.InDelta(t, 2000, summary.TotalDeposits, 1e-9)
	assert.InDelta(t, 20, summary.Progress, 1e-9)

	require.Len(t, totals, 2)
	assert.Equal(t, "food", totals[0].Category)

	require.Len(t, variance.Budgets, 1)
	assert.True(t, variance.Budgets[0].IsOverBudget)
	require.Len(t, variance.Unbudgeted, 1)
	assert.Equal(t, "music", variance.Unbudgeted[0].Category)
}

func TestFamilyGroupsDelegates(t *testing.T) {
	repo := &fakeMetricsRepo{
		guests: []guests.Guest{
			{Name: "Ana", Family: strPtr("Silva")},
			{Name: "Zeca"},
		},
	}

	svc := NewService(repo)
	groups, err := svc.FamilyGroups(context.Background(), "evt-1")
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Silva", groups[0].Family)
	assert.True(t, groups[1].Unassigned)
}
