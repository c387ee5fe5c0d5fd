package metrics

import (
	"context"
	"time"

	"wedding-planner-go/internal/domain/event"
)

// Service composes the pure metric functions with loaded rows to answer the
// dashboard and summary endpoints. It holds no state beyond its
// dependencies; repeated calls over the same rows produce the same output.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) Dashboard(ctx context.Context, e *event.Event) (Dashboard, error) {
	taskRows, err := s.repo.Tasks(ctx, e.ID)
	if err != nil {
		return Dashboard{}, err
	}
	expenseRows, err := s.repo.Expenses(ctx, e.ID)
	if err != nil {
		return Dashboard{}, err
	}
	depositRows, err := s.repo.Deposits(ctx, e.ID)
	if err != nil {
		return Dashboard{}, err
	}
	guestRows, err := s.repo.Guests(ctx, e.ID)
	if err != nil {
		return Dashboard{}, err
	}
	registryRows, err := s.repo.RegistryItems(ctx, e.ID)
	if err != nil {
		return Dashboard{}, err
	}

	now := s.now()
	return Dashboard{
		Tasks:       TaskProgress(taskRows),
		Upcoming:    UpcomingTasks(taskRows, now),
		Financial:   Financial(expenseRows, depositRows, e.FinancialGoal),
		Guests:      GuestStats(guestRows),
		Registry:    RegistryStats(registryRows),
		DaysToEvent: DaysBetween(now, e.Date),
		EventDate:   e.Date,
		CoupleName:  e.CoupleName,
		Currency:    e.Currency,
	}, nil
}

// FinancialReport returns the savings summary, per-category spend and
// budget-vs-actual variance for the financial view.
func (s *Service) FinancialReport(ctx context.Context, e *event.Event) (FinancialSummary, []CategoryTotal, VarianceReport, error) {
	expenseRows, err := s.repo.Expenses(ctx, e.ID)
	if err != nil {
		return FinancialSummary{}, nil, VarianceReport{}, err
	}
	depositRows, err := s.repo.Deposits(ctx, e.ID)
	if err != nil {
		return FinancialSummary{}, nil, VarianceReport{}, err
	}
	budgetRows, err := s.repo.Budgets(ctx, e.ID)
	if err != nil {
		return FinancialSummary{}, nil, VarianceReport{}, err
	}

	summary := Financial(expenseRows, depositRows, e.FinancialGoal)
	totals := CategoryTotals(expenseRows)
	variance := Variance(budgetRows, expenseRows)
	return summary, totals, variance, nil
}

func (s *Service) FamilyGroups(ctx context.Context, eventID string) ([]FamilyGroup, error) {
	guestRows, err := s.repo.Guests(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return GroupByFamily(guestRows), nil
}
