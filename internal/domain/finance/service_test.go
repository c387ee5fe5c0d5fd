package finance

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeFinanceRepo struct {
	expenses map[string]*Expense
	deposits map[string]*Deposit

	// budgets keyed by event_id + category, mirroring the store's
	// conditional upsert on that pair.
	budgets map[string]*Budget
}

func newFakeFinanceRepo() *fakeFinanceRepo {
	return &fakeFinanceRepo{
		expenses: map[string]*Expense{},
		deposits: map[string]*Deposit{},
		budgets:  map[string]*Budget{},
	}
}

func (f *fakeFinanceRepo) ListExpenses(ctx context.Context, eventID string) ([]Expense, error) {
	var items []Expense
	for _, e := range f.expenses {
		if e.EventID == eventID {
			items = append(items, *e)
		}
	}
	return items, nil
}

func (f *fakeFinanceRepo) GetExpenseByID(ctx context.Context, eventID, expenseID string) (*Expense, error) {
	e, ok := f.expenses[expenseID]
	if !ok || e.EventID != eventID {
		return nil, ErrExpenseNotFound
	}
	return e, nil
}

func (f *fakeFinanceRepo) CreateExpense(ctx context.Context, e *Expense) error {
	f.expenses[e.ID] = e
	return nil
}

func (f *fakeFinanceRepo) UpdateExpense(ctx context.Context, e *Expense) error {
	f.expenses[e.ID] = e
	return nil
}

func (f *fakeFinanceRepo) DeleteExpense(ctx context.Context, eventID, expenseID string) (bool, error) {
	e, ok := f.expenses[expenseID]
	if !ok || e.EventID != eventID {
		return false, nil
	}
	delete(f.expenses, expenseID)
	return true, nil
}

func (f *fakeFinanceRepo) ListDeposits(ctx context.Context, eventID string) ([]Deposit, error) {
	var items []Deposit
	for _, d := range f.deposits {
		if d.EventID == eventID {
			items = append(items, *d)
		}
	}
	return items, nil
}

func (f *fakeFinanceRepo) GetDepositByID(ctx context.Context, eventID, depositID string) (*Deposit, error) {
	d, ok := f.deposits[depositID]
	if !ok || d.EventID != eventID {
		return nil, ErrDepositNotFound
	}
	return d, nil
}

func (f *fakeFinanceRepo) CreateDeposit(ctx context.Context, d *Deposit) error {
	f.deposits[d.ID] = d
	return nil
}

func (f *fakeFinanceRepo) UpdateDeposit(ctx context.Context, d *Deposit) error {
	f.deposits[d.ID] = d
	return nil
}

func (f *fakeFinanceRepo) DeleteDeposit(ctx context.Context, eventID, depositID string) (bool, error) {
	d, ok := f.deposits[depositID]
	if !ok || d.EventID != eventID {
		return false, nil
	}
	delete(f.deposits, depositID)
	return true, nil
}

func (f *fakeFinanceRepo) ListBudgets(ctx context.Context, eventID string) ([]Budget, error) {
	var items []Budget
	for _, b := range f.budgets {
		if b.EventID == eventID {
			items = append(items, *b)
		}
	}
	return items, nil
}

func (f *fakeFinanceRepo) UpsertBudget(ctx context.Context, b *Budget) error {
	key := b.EventID + "/" + b.Category
	if existing, ok := f.budgets[key]; ok {
		existing.Amount = b.Amount
		existing.Description = b.Description
		*b = *existing
		return nil
	}
	stored := *b
	f.budgets[key] = &stored
	return nil
}

func (f *fakeFinanceRepo) DeleteBudget(ctx context.Context, eventID, budgetID string) (bool, error) {
	for key, b := range f.budgets {
		if b.EventID == eventID && b.ID == budgetID {
			delete(f.budgets, key)
			return true, nil
		}
	}
	return false, nil
}

func TestCreateExpenseDefaults(t *testing.T) {
	svc := NewService(newFakeFinanceRepo())

	e, err := svc.CreateExpense(context.Background(), CreateExpenseInput{
		EventID:        "evt-1",
		Name:           " Venue ",
		Category:       "venue",
		EstimatedValue: 5000,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if e.Name != "Venue" {
		t.Fatalf("expected trimmed name, got %q", e.Name)
	}
	if e.PaidBy != PayerBoth {
		t.Fatalf("expected default payer, got %q", e.PaidBy)
	}
	if e.PaymentStatus != PaymentUnpaid {
		t.Fatalf("expected default payment status, got %q", e.PaymentStatus)
	}
}

func TestCreateExpenseValidation(t *testing.T) {
	svc := NewService(newFakeFinanceRepo())

	negative := -1.0
	cases := []CreateExpenseInput{
		{EventID: "evt-1", Name: "", Category: "venue", EstimatedValue: 10},
		{EventID: "evt-1", Name: "Venue", Category: " ", EstimatedValue: 10},
		{EventID: "evt-1", Name: "Venue", Category: "venue", EstimatedValue: -1},
		{EventID: "evt-1", Name: "Venue", Category: "venue", EstimatedValue: 10, ActualValue: &negative},
	}
	for i, input := range cases {
		if _, err := svc.CreateExpense(context.Background(), input); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestUpsertBudgetCreatesThenUpdates(t *testing.T) {
	repo := newFakeFinanceRepo()
	svc := NewService(repo)

	first, err := svc.UpsertBudget(context.Background(), UpsertBudgetInput{
		EventID:  "evt-1",
		Category: "food",
		Amount:   1000,
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second, err := svc.UpsertBudget(context.Background(), UpsertBudgetInput{
		EventID:  "evt-1",
		Category: "food",
		Amount:   1500,
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("upsert must keep the surviving row's id, got %q and %q", first.ID, second.ID)
	}
	if second.Amount != 1500 {
		t.Fatalf("expected updated amount, got %v", second.Amount)
	}

	items, _ := repo.ListBudgets(context.Background(), "evt-1")
	if len(items) != 1 {
		t.Fatalf("expected a single budget row per category, got %d", len(items))
	}
}

func TestUpsertBudgetSeparateCategoriesAndEvents(t *testing.T) {
	repo := newFakeFinanceRepo()
	svc := NewService(repo)

	if _, err := svc.UpsertBudget(context.Background(), UpsertBudgetInput{EventID: "evt-1", Category: "food", Amount: 1000}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if _, err := svc.UpsertBudget(context.Background(), UpsertBudgetInput{EventID: "evt-1", Category: "venue", Amount: 5000}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if _, err := svc.UpsertBudget(context.Background(), UpsertBudgetInput{EventID: "evt-2", Category: "food", Amount: 700}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	items, _ := repo.ListBudgets(context.Background(), "evt-1")
	if len(items) != 2 {
		t.Fatalf("expected 2 budgets for evt-1, got %d", len(items))
	}
}

func TestUpsertBudgetValidation(t *testing.T) {
	svc := NewService(newFakeFinanceRepo())

	if _, err := svc.UpsertBudget(context.Background(), UpsertBudgetInput{EventID: "evt-1", Category: " ", Amount: 10}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank category, got %v", err)
	}
	if _, err := svc.UpsertBudget(context.Background(), UpsertBudgetInput{EventID: "evt-1", Category: "food", Amount: -10}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative amount, got %v", err)
	}
}

func TestDeleteExpenseNotFound(t *testing.T) {
	svc := NewService(newFakeFinanceRepo())

	if err := svc.DeleteExpense(context.Background(), "evt-1", "missing"); !errors.Is(err, ErrExpenseNotFound) {
		t.Fatalf("expected ErrExpenseNotFound, got %v", err)
	}
}

func TestCreateDepositValidation(t *testing.T) {
	svc := NewService(newFakeFinanceRepo())

	_, err := svc.CreateDeposit(context.Background(), CreateDepositInput{
		EventID:     "evt-1",
		Description: "Savings",
		Amount:      100,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero date, got %v", err)
	}

	d, err := svc.CreateDeposit(context.Background(), CreateDepositInput{
		EventID:     "evt-1",
		Description: "Savings",
		Amount:      100,
		Date:        time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if d.PaidBy != PayerBoth {
		t.Fatalf("expected default payer, got %q", d.PaidBy)
	}
}
