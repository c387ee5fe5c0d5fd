// Package metrics computes the derived figures shown on the dashboard and
// financial summary. Every function here is pure: it takes collections
// already scoped to one event, never errors, and degrades to zero values on
// empty input.
package metrics

import (
	"sort"
	"time"

	"wedding-planner-go/internal/domain/finance"
	"wedding-planner-go/internal/domain/guests"
	"wedding-planner-go/internal/domain/registry"
	"wedding-planner-go/internal/domain/tasks"
)

const upcomingTaskLimit = 5

// TaskProgress is the percentage of completed tasks, in [0,100]. Zero when
// there are no tasks at all.
func TaskProgress(items []tasks.Task) TaskSummary {
	summary := TaskSummary{Total: len(items)}
	for _, t := range items {
		if t.Completed {
			summary.Completed++
		}
	}
	if summary.Total > 0 {
		summary.Progress = float64(summary.Completed) / float64(summary.Total) * 100
	}
	return summary
}

// UpcomingTasks returns the first five incomplete tasks by deadline. The
// sort is stable, so tasks sharing a deadline keep their input order.
func UpcomingTasks(items []tasks.Task, now time.Time) []UpcomingTask {
	pending := make([]tasks.Task, 0, len(items))
	for _, t := range items {
		if !t.Completed {
			pending = append(pending, t)
		}
	}

	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].Deadline.Before(pending[j].Deadline)
	})

	if len(pending) > upcomingTaskLimit {
		pending = pending[:upcomingTaskLimit]
	}

	upcoming := make([]UpcomingTask, 0, len(pending))
	for _, t := range pending {
		days := DaysBetween(now, t.Deadline)
		upcoming = append(upcoming, UpcomingTask{
			Task:      t,
			DaysUntil: days,
			Urgency:   Classify(t, now),
		})
	}
	return upcoming
}

// Classify marks an incomplete task overdue when its deadline has passed and
// urgent when it is due within a week. A completed task is neither.
func Classify(t tasks.Task, now time.Time) Urgency {
	if t.Completed {
		return UrgencyNone
	}
	days := DaysBetween(now, t.Deadline)
	switch {
	case days < 0:
		return UrgencyOverdue
	case days <= 7:
		return UrgencyUrgent
	default:
		return UrgencyNone
	}
}

// DaysBetween is the signed calendar-day difference from one instant to
// another, ignoring time of day.
func DaysBetween(from, to time.Time) int {
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

func TotalDeposits(deposits []finance.Deposit) float64 {
	var total float64
	for _, d := range deposits {
		total += d.Amount
	}
	return total
}

// FinancialProgress is the savings total as a percentage of the goal. Zero
// when the goal is unset; deliberately not clamped above 100, the display
// layer clamps the bar but not the label.
func FinancialProgress(deposits []finance.Deposit, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return TotalDeposits(deposits) / goal * 100
}

// Financial builds the full financial summary for an event.
func Financial(expenses []finance.Expense, deposits []finance.Deposit, goal float64) FinancialSummary {
	summary := FinancialSummary{
		TotalDeposits: TotalDeposits(deposits),
		FinancialGoal: goal,
		Progress:      FinancialProgress(deposits, goal),
	}
	summary.Remaining = goal - summary.TotalDeposits

	for _, e := range expenses {
		summary.TotalEstimated += e.EstimatedValue
		summary.TotalActual += e.EffectiveValue()
	}
	summary.Difference = summary.TotalActual - summary.TotalEstimated
	return summary
}

// CategoryTotals sums effective expense values per category, ordered by
// total descending then category name for a stable result.
func CategoryTotals(expenses []finance.Expense) []CategoryTotal {
	byCategory := make(map[string]float64, len(expenses))
	for _, e := range expenses {
		byCategory[e.Category] += e.EffectiveValue()
	}

	totals := make([]CategoryTotal, 0, len(byCategory))
	for category, total := range byCategory {
		totals = append(totals, CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Total != totals[j].Total {
			return totals[i].Total > totals[j].Total
		}
		return totals[i].Category < totals[j].Category
	})
	return totals
}

// Variance compares each budget row against the effective spend in its
// category. Spend in categories without a budget row is listed separately.
func Variance(budgets []finance.Budget, expenses []finance.Expense) VarianceReport {
	spentByCategory := make(map[string]float64, len(expenses))
	for _, e := range expenses {
		spentByCategory[e.Category] += e.EffectiveValue()
	}

	report := VarianceReport{
		Budgets:    make([]BudgetVariance, 0, len(budgets)),
		Unbudgeted: []CategoryTotal{},
	}

	budgeted := make(map[string]struct{}, len(budgets))
	for _, b := range budgets {
		budgeted[b.Category] = struct{}{}
		spent := spentByCategory[b.Category]

		variance := BudgetVariance{
			BudgetID:     b.ID,
			Category:     b.Category,
			Amount:       b.Amount,
			Spent:        spent,
			Remaining:    b.Amount - spent,
			IsOverBudget: spent > b.Amount,
		}
		if b.Amount > 0 {
			variance.Percentage = spent / b.Amount * 100
		}
		report.Budgets = append(report.Budgets, variance)
	}

	for category, total := range spentByCategory {
		if _, ok := budgeted[category]; ok {
			continue
		}
		report.Unbudgeted = append(report.Unbudgeted, CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(report.Unbudgeted, func(i, j int) bool {
		return report.Unbudgeted[i].Category < report.Unbudgeted[j].Category
	})

	return report
}

// GuestStats aggregates headcounts and invitation status. Each guest counts
// as themself plus companions; godparents are counted regardless of status.
func GuestStats(list []guests.Guest) GuestSummary {
	summary := GuestSummary{Total: len(list)}
	for _, g := range list {
		summary.Headcount += g.Headcount()
		switch g.Status {
		case guests.StatusConfirmed:
			summary.ConfirmedGuests++
			summary.ConfirmedHeadcount += g.Headcount()
			summary.InvitedGuests++
		case guests.StatusInvited:
			summary.InvitedGuests++
		case guests.StatusDeclined:
			summary.DeclinedGuests++
		}
		if g.IsGodparent {
			summary.Godparents++
		}
	}
	return summary
}

// RegistryStats is the purchased share of the registry, zero when empty.
func RegistryStats(items []registry.Item) RegistrySummary {
	summary := RegistrySummary{Total: len(items)}
	for _, i := range items {
		if i.Status == registry.StatusPurchased {
			summary.Purchased++
		}
	}
	if summary.Total > 0 {
		summary.Progress = float64(summary.Purchased) / float64(summary.Total) * 100
	}
	return summary
}

// GroupByFamily partitions guests by family label. Groups come back in
// alphabetical order with the unassigned group always last; guests within a
// group are sorted by name.
func GroupByFamily(list []guests.Guest) []FamilyGroup {
	byFamily := make(map[string][]guests.Guest)
	var unassigned []guests.Guest

	for _, g := range list {
		if g.Family == nil || *g.Family == "" {
			unassigned = append(unassigned, g)
			continue
		}
		byFamily[*g.Family] = append(byFamily[*g.Family], g)
	}

	names := make([]string, 0, len(byFamily))
	for name := range byFamily {
		names = append(names, name)
	}
	sort.Strings(names)

	groups := make([]FamilyGroup, 0, len(names)+1)
	for _, name := range names {
		groups = append(groups, newFamilyGroup(name, false, byFamily[name]))
	}
	if len(unassigned) > 0 {
		groups = append(groups, newFamilyGroup("unassigned", true, unassigned))
	}
	return groups
}

func newFamilyGroup(name string, unassigned bool, members []guests.Guest) FamilyGroup {
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Name < members[j].Name
	})

	group := FamilyGroup{
		Family:     name,
		Unassigned: unassigned,
		Guests:     members,
	}
	for _, g := range members {
		group.Headcount += g.Headcount()
	}
	return group
}
