package tasks

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

// List returns the event's tasks ordered by deadline then priority, as the
// repository guarantees.
func (s *Service) List(ctx context.Context, eventID string) ([]Task, error) {
	return s.repo.List(ctx, eventID)
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*Task, error) {
	if err := validate(input.Description, input.Deadline, input.Stage); err != nil {
		return nil, err
	}

	t := Task{
		ID:          uuid.NewString(),
		EventID:     input.EventID,
		Description: strings.TrimSpace(input.Description),
		Deadline:    input.Deadline,
		Stage:       input.Stage,
		Responsible: defaultResponsible(input.Responsible),
		Priority:    defaultPriority(input.Priority),
	}

	if err := s.repo.Create(ctx, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Service) Update(ctx context.Context, input UpdateInput) (*Task, error) {
	if err := validate(input.Description, input.Deadline, input.Stage); err != nil {
		return nil, err
	}

	t, err := s.repo.GetByID(ctx, input.EventID, input.ID)
	if err != nil {
		return nil, err
	}

	t.Description = strings.TrimSpace(input.Description)
	t.Deadline = input.Deadline
	t.Stage = input.Stage
	t.Responsible = defaultResponsible(input.Responsible)
	t.Priority = defaultPriority(input.Priority)
	t.Completed = input.Completed
	t.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// SetCompleted toggles just the completed flag, used by the checkbox on the
// task list.
func (s *Service) SetCompleted(ctx context.Context, eventID, taskID string, completed bool) (*Task, error) {
	t, err := s.repo.GetByID(ctx, eventID, taskID)
	if err != nil {
		return nil, err
	}

	t.Completed = completed
	t.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Delete(ctx context.Context, eventID, taskID string) error {
	deleted, err := s.repo.Delete(ctx, eventID, taskID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTaskNotFound
	}
	return nil
}

func validate(description string, deadline time.Time, stage Stage) error {
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("description is required: %w", ErrInvalidInput)
	}
	if deadline.IsZero() {
		return fmt.Errorf("deadline is required: %w", ErrInvalidInput)
	}
	if !validStage(stage) {
		return fmt.Errorf("invalid stage: %w", ErrInvalidInput)
	}
	return nil
}

func validStage(stage Stage) bool {
	for _, s := range Stages {
		if s == stage {
			return true
		}
	}
	return false
}

func defaultResponsible(r Responsible) Responsible {
	switch r {
	case ResponsiblePartyA, ResponsiblePartyB, ResponsibleBoth:
		return r
	default:
		return ResponsibleBoth
	}
}

func defaultPriority(p Priority) Priority {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p
	default:
		return PriorityMedium
	}
}
