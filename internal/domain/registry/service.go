package registry

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

func (s *Service) List(ctx context.Context, eventID string) ([]Item, error) {
	return s.repo.List(ctx, eventID)
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*Item, error) {
	if err := validate(input.Name, input.Category, input.EstimatedPrice); err != nil {
		return nil, err
	}

	i := Item{
		ID:             uuid.NewString(),
		EventID:        input.EventID,
		Name:           strings.TrimSpace(input.Name),
		Category:       strings.TrimSpace(input.Category),
		EstimatedPrice: input.EstimatedPrice,
		Store:          input.Store,
		Link:           input.Link,
		Status:         defaultStatus(input.Status),
	}

	if err := s.repo.Create(ctx, &i); err != nil {
		return nil, err
	}
	return &i, nil
}

func (s *Service) Update(ctx context.Context, input UpdateInput) (*Item, error) {
	if err := validate(input.Name, input.Category, input.EstimatedPrice); err != nil {
		return nil, err
	}

	i, err := s.repo.GetByID(ctx, input.EventID, input.ID)
	if err != nil {
		return nil, err
	}

	i.Name = strings.TrimSpace(input.Name)
	i.Category = strings.TrimSpace(input.Category)
	i.EstimatedPrice = input.EstimatedPrice
	i.Store = input.Store
	i.Link = input.Link
	i.Status = defaultStatus(input.Status)
	i.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

// SetStatus flips an item between pending and purchased.
func (s *Service) SetStatus(ctx context.Context, eventID, itemID string, status Status) (*Item, error) {
	if status != StatusPending && status != StatusPurchased {
		return nil, fmt.Errorf("invalid status: %w", ErrInvalidInput)
	}

	i, err := s.repo.GetByID(ctx, eventID, itemID)
	if err != nil {
		return nil, err
	}

	i.Status = status
	i.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *Service) Delete(ctx context.Context, eventID, itemID string) error {
	deleted, err := s.repo.Delete(ctx, eventID, itemID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrItemNotFound
	}
	return nil
}

func validate(name, category string, price *float64) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required: %w", ErrInvalidInput)
	}
	if strings.TrimSpace(category) == "" {
		return fmt.Errorf("category is required: %w", ErrInvalidInput)
	}
	if price != nil && *price < 0 {
		return fmt.Errorf("estimated price must not be negative: %w", ErrInvalidInput)
	}
	return nil
}

func defaultStatus(status Status) Status {
	if status == StatusPurchased {
		return status
	}
	return StatusPending
}
