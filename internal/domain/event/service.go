package event

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

// Create opens the single event record for a user. The one-event-per-user
// rule is enforced here rather than at the schema level.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Event, error) {
	if err := validate(input.CoupleName, input.City, input.State, input.Date, input.FinancialGoal); err != nil {
		return nil, err
	}

	existing, err := s.repo.CountByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, ErrEventExists
	}

	e := Event{
		ID:            uuid.NewString(),
		UserID:        input.UserID,
		CoupleName:    strings.TrimSpace(input.CoupleName),
		Date:          input.Date,
		City:          strings.TrimSpace(input.City),
		State:         strings.TrimSpace(input.State),
		CeremonyType:  defaultString(input.CeremonyType, "civil"),
		Currency:      defaultString(input.Currency, "R$"),
		FinancialGoal: input.FinancialGoal,
		Theme:         defaultString(input.Theme, "light"),
	}

	if err := s.repo.Create(ctx, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Service) GetByUser(ctx context.Context, userID string) (*Event, error) {
	return s.repo.GetByUserID(ctx, userID)
}

func (s *Service) Update(ctx context.Context, input UpdateInput) (*Event, error) {
	if err := validate(input.CoupleName, input.City, input.State, input.Date, input.FinancialGoal); err != nil {
		return nil, err
	}

	e, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if e.UserID != input.UserID {
		return nil, ErrEventNotFound
	}

	e.CoupleName = strings.TrimSpace(input.CoupleName)
	e.Date = input.Date
	e.City = strings.TrimSpace(input.City)
	e.State = strings.TrimSpace(input.State)
	e.CeremonyType = defaultString(input.CeremonyType, e.CeremonyType)
	e.Currency = defaultString(input.Currency, e.Currency)
	e.FinancialGoal = input.FinancialGoal
	e.Theme = defaultString(input.Theme, e.Theme)
	e.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func validate(coupleName, city, state string, date time.Time, goal float64) error {
	if strings.TrimSpace(coupleName) == "" {
		return fmt.Errorf("couple name is required: %w", ErrInvalidInput)
	}
	if date.IsZero() {
		return fmt.Errorf("date is required: %w", ErrInvalidInput)
	}
	if strings.TrimSpace(city) == "" {
		return fmt.Errorf("city is required: %w", ErrInvalidInput)
	}
	if strings.TrimSpace(state) == "" {
		return fmt.Errorf("state is required: %w", ErrInvalidInput)
	}
	if goal < 0 {
		return fmt.Errorf("financial goal must not be negative: %w", ErrInvalidInput)
	}
	return nil
}

func defaultString(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}
