package finance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListExpenses(ctx context.Context, eventID string) ([]Expense, error) {
	return s.repo.ListExpenses(ctx, eventID)
}

func (s *Service) CreateExpense(ctx context.Context, input CreateExpenseInput) (*Expense, error) {
	if err := validateExpense(input.Name, input.Category, input.EstimatedValue, input.ActualValue); err != nil {
		return nil, err
	}

	e := Expense{
		ID:             uuid.NewString(),
		EventID:        input.EventID,
		Name:           strings.TrimSpace(input.Name),
		Category:       strings.TrimSpace(input.Category),
		EstimatedValue: input.EstimatedValue,
		ActualValue:    input.ActualValue,
		PaidBy:         defaultPayer(input.PaidBy),
		PaymentStatus:  defaultPaymentStatus(input.PaymentStatus),
	}

	if err := s.repo.CreateExpense(ctx, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Service) UpdateExpense(ctx context.Context, input UpdateExpenseInput) (*Expense, error) {
	if err := validateExpense(input.Name, input.Category, input.EstimatedValue, input.ActualValue); err != nil {
		return nil, err
	}

	e, err := s.repo.GetExpenseByID(ctx, input.EventID, input.ID)
	if err != nil {
		return nil, err
	}

	e.Name = strings.TrimSpace(input.Name)
	e.Category = strings.TrimSpace(input.Category)
	e.EstimatedValue = input.EstimatedValue
	e.ActualValue = input.ActualValue
	e.PaidBy = defaultPayer(input.PaidBy)
	e.PaymentStatus = defaultPaymentStatus(input.PaymentStatus)
	e.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateExpense(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) DeleteExpense(ctx context.Context, eventID, expenseID string) error {
	deleted, err := s.repo.DeleteExpense(ctx, eventID, expenseID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrExpenseNotFound
	}
	return nil
}

func (s *Service) ListDeposits(ctx context.Context, eventID string) ([]Deposit, error) {
	return s.repo.ListDeposits(ctx, eventID)
}

func (s *Service) CreateDeposit(ctx context.Context, input CreateDepositInput) (*Deposit, error) {
	if err := validateDeposit(input.Description, input.Amount, input.Date); err != nil {
		return nil, err
	}

	d := Deposit{
		ID:          uuid.NewString(),
		EventID:     input.EventID,
		Description: strings.TrimSpace(input.Description),
		Amount:      input.Amount,
		PaidBy:      defaultPayer(input.PaidBy),
		Date:        input.Date,
	}

	if err := s.repo.CreateDeposit(ctx, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *Service) UpdateDeposit(ctx context.Context, input UpdateDepositInput) (*Deposit, error) {
	if err := validateDeposit(input.Description, input.Amount, input.Date); err != nil {
		return nil, err
	}

	d, err := s.repo.GetDepositByID(ctx, input.EventID, input.ID)
	if err != nil {
		return nil, err
	}

	d.Description = strings.TrimSpace(input.Description)
	d.Amount = input.Amount
	d.PaidBy = defaultPayer(input.PaidBy)
	d.Date = input.Date

	if err := s.repo.UpdateDeposit(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) DeleteDeposit(ctx context.Context, eventID, depositID string) error {
	deleted, err := s.repo.DeleteDeposit(ctx, eventID, depositID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrDepositNotFound
	}
	return nil
}

func (s *Service) ListBudgets(ctx context.Context, eventID string) ([]Budget, error) {
	return s.repo.ListBudgets(ctx, eventID)
}

// UpsertBudget creates the budget for a category or silently updates the
// existing one. The write is a single conditional upsert at the store layer,
// so two concurrent saves for the same category cannot produce duplicates.
func (s *Service) UpsertBudget(ctx context.Context, input UpsertBudgetInput) (*Budget, error) {
	category := strings.TrimSpace(input.Category)
	if category == "" {
		return nil, fmt.Errorf("category is required: %w", ErrInvalidInput)
	}
	if input.Amount < 0 {
		return nil, fmt.Errorf("amount must not be negative: %w", ErrInvalidInput)
	}

	b := Budget{
		ID:          uuid.NewString(),
		EventID:     input.EventID,
		Category:    category,
		Amount:      input.Amount,
		Description: input.Description,
	}

	if err := s.repo.UpsertBudget(ctx, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *Service) DeleteBudget(ctx context.Context, eventID, budgetID string) error {
	deleted, err := s.repo.DeleteBudget(ctx, eventID, budgetID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBudgetNotFound
	}
	return nil
}

func validateExpense(name, category string, estimated float64, actual *float64) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required: %w", ErrInvalidInput)
	}
	if strings.TrimSpace(category) == "" {
		return fmt.Errorf("category is required: %w", ErrInvalidInput)
	}
	if estimated < 0 {
		return fmt.Errorf("estimated value must not be negative: %w", ErrInvalidInput)
	}
	if actual != nil && *actual < 0 {
		return fmt.Errorf("actual value must not be negative: %w", ErrInvalidInput)
	}
	return nil
}

func validateDeposit(description string, amount float64, date time.Time) error {
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("description is required: %w", ErrInvalidInput)
	}
	if amount < 0 {
		return fmt.Errorf("amount must not be negative: %w", ErrInvalidInput)
	}
	if date.IsZero() {
		return fmt.Errorf("date is required: %w", ErrInvalidInput)
	}
	return nil
}

func defaultPayer(p Payer) Payer {
	switch p {
	case PayerPartyA, PayerPartyB, PayerBoth:
		return p
	default:
		return PayerBoth
	}
}

func defaultPaymentStatus(p PaymentStatus) PaymentStatus {
	switch p {
	case PaymentUnpaid, PaymentPartial, PaymentPaid:
		return p
	default:
		return PaymentUnpaid
	}
}
