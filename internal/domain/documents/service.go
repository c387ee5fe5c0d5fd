package documents

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

func (s *Service) List(ctx context.Context, eventID string) ([]Document, error) {
	return s.repo.List(ctx, eventID)
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*Document, error) {
	if err := validate(input.Type, input.Title); err != nil {
		return nil, err
	}

	d := Document{
		ID:          uuid.NewString(),
		EventID:     input.EventID,
		Type:        strings.TrimSpace(input.Type),
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Link:        input.Link,
		Notes:       input.Notes,
	}

	if err := s.repo.Create(ctx, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *Service) Update(ctx context.Context, input UpdateInput) (*Document, error) {
	if err := validate(input.Type, input.Title); err != nil {
		return nil, err
	}

	d, err := s.repo.GetByID(ctx, input.EventID, input.ID)
	if err != nil {
		return nil, err
	}

	d.Type = strings.TrimSpace(input.Type)
	d.Title = strings.TrimSpace(input.Title)
	d.Description = input.Description
	d.Link = input.Link
	d.Notes = input.Notes
	d.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) Delete(ctx context.Context, eventID, documentID string) error {
	deleted, err := s.repo.Delete(ctx, eventID, documentID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrDocumentNotFound
	}
	return nil
}

func validate(documentType, title string) error {
	if strings.TrimSpace(documentType) == "" {
		return fmt.Errorf("type is required: %w", ErrInvalidInput)
	}
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required: %w", ErrInvalidInput)
	}
	return nil
}
