package metrics

import (
	"testing"
	"time"

	"wedding-planner-go/internal/domain/finance"
	"wedding-planner-go/internal/domain/guests"
	"wedding-planner-go/internal/domain/registry"
	"wedding-planner-go/internal/domain/tasks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(offset int) time.Time {
	return time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }

func TestTaskProgress(t *testing.T) {
	assert.Equal(t, TaskSummary{}, TaskProgress(nil))

	summary := TaskProgress([]tasks.Task{
		{Completed: true},
		{Completed: false},
		{Completed: true},
		{Completed: false},
	})
	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 2, summary.Completed)
	assert.InDelta(t, 50, summary.Progress, 1e-9)
}

func TestUpcomingTasksSkipsCompletedAndLimits(t *testing.T) {
	now := day(0)
	items := []tasks.Task{
		{ID: "done", Deadline: day(1), Completed: true},
		{ID: "f", Deadline: day(60)},
		{ID: "a", Deadline: day(2)},
		{ID: "b", Deadline: day(5)},
		{ID: "c", Deadline: day(10)},
		{ID: "d", Deadline: day(20)},
		{ID: "e", Deadline: day(40)},
	}

	upcoming := UpcomingTasks(items, now)
	require.Len(t, upcoming, 5)
	assert.Equal(t, "a", upcoming[0].Task.ID)
	assert.Equal(t, "e", upcoming[4].Task.ID)
	for _, u := range upcoming {
		assert.NotEqual(t, "done", u.Task.ID)
	}
	assert.Equal(t, 2, upcoming[0].DaysUntil)
	assert.Equal(t, UrgencyUrgent, upcoming[0].Urgency)
}

func TestUpcomingTasksStableOnEqualDeadlines(t *testing.T) {
	now := day(0)
	items := []tasks.Task{
		{ID: "first", Deadline: day(3)},
		{ID: "second", Deadline: day(3)},
		{ID: "third", Deadline: day(3)},
	}

	upcoming := UpcomingTasks(items, now)
	require.Len(t, upcoming, 3)
	assert.Equal(t, "first", upcoming[0].Task.ID)
	assert.Equal(t, "second", upcoming[1].Task.ID)
	assert.Equal(t, "third", upcoming[2].Task.ID)
}

func TestClassify(t *testing.T) {
	now := day(0)

	assert.Equal(t, UrgencyOverdue, Classify(tasks.Task{Deadline: day(-1)}, now))
	assert.Equal(t, UrgencyUrgent, Classify(tasks.Task{Deadline: day(0)}, now))
	assert.Equal(t, UrgencyUrgent, Classify(tasks.Task{Deadline: day(7)}, now))
	assert.Equal(t, UrgencyNone, Classify(tasks.Task{Deadline: day(8)}, now))
	assert.Equal(t, UrgencyNone, Classify(tasks.Task{Deadline: day(-1), Completed: true}, now))
}

func TestDaysBetweenIgnoresTimeOfDay(t *testing.T) {
	late := time.Date(2026, 9, 1, 23, 50, 0, 0, time.UTC)
	early := time.Date(2026, 9, 2, 0, 10, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysBetween(late, early))
	assert.Equal(t, -1, DaysBetween(early, late))
	assert.Equal(t, 0, DaysBetween(late, late))
}

func TestFinancialProgress(t *testing.T) {
	deposits := []finance.Deposit{{Amount: 6000}, {Amount: 6000}}

	assert.Equal(t, float64(0), FinancialProgress(deposits, 0))
	assert.Equal(t, float64(0), FinancialProgress(deposits, -100))
	assert.InDelta(t, 60, FinancialProgress(deposits, 20000), 1e-9)

	// Savings past the goal are reported over 100, not clamped.
	assert.InDelta(t, 120, FinancialProgress(deposits, 10000), 1e-9)
}

func TestFinancialUsesEffectiveValues(t *testing.T) {
	expenses := []finance.Expense{
		{EstimatedValue: 1000, ActualValue: floatPtr(1200)},
		{EstimatedValue: 500},
	}
	deposits := []finance.Deposit{{Amount: 3000}}

	summary := Financial(expenses, deposits, 10000)
	assert.InDelta(t, 3000, summary.TotalDeposits, 1e-9)
	assert.InDelta(t, 7000, summary.Remaining, 1e-9)
	assert.InDelta(t, 1500, summary.TotalEstimated, 1e-9)
	assert.InDelta(t, 1700, summary.TotalActual, 1e-9)
	assert.InDelta(t, 200, summary.Difference, 1e-9)
}

func TestCategoryTotalsOrderIndependent(t *testing.T) {
	forward := []finance.Expense{
		{Category: "venue", EstimatedValue: 5000},
		{Category: "food", EstimatedValue: 2000, ActualValue: floatPtr(2500)},
		{Category: "food", EstimatedValue: 1000},
		{Category: "music", EstimatedValue: 3500},
	}
	reversed := []finance.Expense{forward[3], forward[2], forward[1], forward[0]}

	expected := []CategoryTotal{
		{Category: "venue", Total: 5000},
		{Category: "food", Total: 3500},
		{Category: "music", Total: 3500},
	}
	assert.Equal(t, expected, CategoryTotals(forward))
	assert.Equal(t, expected, CategoryTotals(reversed))
}

func TestVariance(t *testing.T) {
	budgets := []finance.Budget{
		{ID: "b1", Category: "food", Amount: 1000},
		{ID: "b2", Category: "venue", Amount: 5000},
		{ID: "b3", Category: "flowers", Amount: 0},
	}
	expenses := []finance.Expense{
		{Category: "food", EstimatedValue: 1200},
		{Category: "venue", EstimatedValue: 2000},
		{Category: "music", EstimatedValue: 800},
	}

	report := Variance(budgets, expenses)
	require.Len(t, report.Budgets, 3)

	food := report.Budgets[0]
	assert.Equal(t, "b1", food.BudgetID)
	assert.InDelta(t, 1200, food.Spent, 1e-9)
	assert.InDelta(t, -200, food.Remaining, 1e-9)
	assert.InDelta(t, 120, food.Percentage, 1e-9)
	assert.True(t, food.IsOverBudget)

	venue := report.Budgets[1]
	assert.InDelta(t, 3000, venue.Remaining, 1e-9)
	assert.False(t, venue.IsOverBudget)

	// A zero-amount budget never divides; percentage stays zero.
	flowers := report.Budgets[2]
	assert.Equal(t, float64(0), flowers.Percentage)
	assert.False(t, flowers.IsOverBudget)

	require.Len(t, report.Unbudgeted, 1)
	assert.Equal(t, CategoryTotal{Category: "music", Total: 800}, report.Unbudgeted[0])
}

func TestGuestStats(t *testing.T) {
	list := []guests.Guest{
		{Name: "Ana", Companions: 3, Status: guests.StatusConfirmed},
		{Name: "Bruno", Status: guests.StatusInvited},
		{Name: "Carla", Status: guests.StatusDeclined, IsGodparent: true},
		{Name: "Davi", Companions: 1, Status: guests.StatusNotInvited},
	}

	summary := GuestStats(list)
	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 8, summary.Headcount)
	assert.Equal(t, 4, summary.ConfirmedHeadcount)
	assert.Equal(t, 1, summary.ConfirmedGuests)
	// A confirmed guest was necessarily invited.
	assert.Equal(t, 2, summary.InvitedGuests)
	assert.Equal(t, 1, summary.DeclinedGuests)
	assert.Equal(t, 1, summary.Godparents)
}

func TestRegistryStats(t *testing.T) {
	assert.Equal(t, RegistrySummary{}, RegistryStats(nil))

	summary := RegistryStats([]registry.Item{
		{Status: registry.StatusPurchased},
		{Status: registry.StatusPending},
		{Status: registry.StatusPending},
		{Status: registry.StatusPurchased},
	})
	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 2, summary.Purchased)
	assert.InDelta(t, 50, summary.Progress, 1e-9)
}

func TestGroupByFamily(t *testing.T) {
	list := []guests.Guest{
		{Name: "Rafael", Family: strPtr("Silva")},
		{Name: "Beatriz", Family: strPtr("Costa"), Companions: 1},
		{Name: "Zeca"},
		{Name: "Alice", Family: strPtr("Silva")},
		{Name: "Marina", Family: strPtr("")},
	}

	groups := GroupByFamily(list)
	require.Len(t, groups, 3)

	assert.Equal(t, "Costa", groups[0].Family)
	assert.Equal(t, 2, groups[0].Headcount)

	assert.Equal(t, "Silva", groups[1].Family)
	assert.Equal(t, "Alice", groups[1].Guests[0].Name)
	assert.Equal(t, "Rafael", groups[1].Guests[1].Name)

	// Empty labels land with missing ones, always last.
	last := groups[2]
	assert.True(t, last.Unassigned)
	require.Len(t, last.Guests, 2)
	assert.Equal(t, "Marina", last.Guests[0].Name)
	assert.Equal(t, "Zeca", last.Guests[1].Name)
}

func TestGroupByFamilyEmpty(t *testing.T) {
	assert.Empty(t, GroupByFamily(nil))
}
