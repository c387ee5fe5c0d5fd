package notes

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

func (s *Service) List(ctx context.Context, eventID string) ([]Note, error) {
	return s.repo.List(ctx, eventID)
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*Note, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, fmt.Errorf("content is required: %w", ErrInvalidInput)
	}

	n := Note{
		ID:      uuid.NewString(),
		EventID: input.EventID,
		Title:   input.Title,
		Content: input.Content,
		Type:    defaultType(input.Type),
	}

	if err := s.repo.Create(ctx, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *Service) Update(ctx context.Context, input UpdateInput) (*Note, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, fmt.Errorf("content is required: %w", ErrInvalidInput)
	}

	n, err := s.repo.GetByID(ctx, input.EventID, input.ID)
	if err != nil {
		return nil, err
	}

	n.Title = input.Title
	n.Content = input.Content
	n.Type = defaultType(input.Type)
	n.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *Service) Delete(ctx context.Context, eventID, noteID string) error {
	deleted, err := s.repo.Delete(ctx, eventID, noteID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNoteNotFound
	}
	return nil
}

func defaultType(t Type) Type {
	switch t {
	case TypeGeneral, TypeDecoration, TypeMusic, TypeLetter, TypeVows, TypePlaylist:
		return t
	default:
		return TypeGeneral
	}
}
