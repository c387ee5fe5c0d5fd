package guests

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

func (s *Service) List(ctx context.Context, eventID string) ([]Guest, error) {
	return s.repo.List(ctx, eventID)
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*Guest, error) {
	if err := validate(input.Name, input.Companions); err != nil {
		return nil, err
	}

	g := Guest{
		ID:            uuid.NewString(),
		EventID:       input.EventID,
		Name:          strings.TrimSpace(input.Name),
		Companions:    input.Companions,
		Phone:         input.Phone,
		AltContact:    input.AltContact,
		Status:        defaultStatus(input.Status),
		Family:        normalizeFamily(input.Family),
		IsGodparent:   input.IsGodparent,
		GodparentRole: godparentRole(input.IsGodparent, input.GodparentRole),
	}

	if err := s.repo.Create(ctx, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *Service) Update(ctx context.Context, input UpdateInput) (*Guest, error) {
	if err := validate(input.Name, input.Companions); err != nil {
		return nil, err
	}

	g, err := s.repo.GetByID(ctx, input.EventID, input.ID)
	if err != nil {
		return nil, err
	}

	g.Name = strings.TrimSpace(input.Name)
	g.Companions = input.Companions
	g.Phone = input.Phone
	g.AltContact = input.AltContact
	g.Status = defaultStatus(input.Status)
	g.Family = normalizeFamily(input.Family)
	g.IsGodparent = input.IsGodparent
	g.GodparentRole = godparentRole(input.IsGodparent, input.GodparentRole)
	g.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *Service) Delete(ctx context.Context, eventID, guestID string) error {
	deleted, err := s.repo.Delete(ctx, eventID, guestID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrGuestNotFound
	}
	return nil
}

func validate(name string, companions int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required: %w", ErrInvalidInput)
	}
	if companions < 0 {
		return fmt.Errorf("companions must not be negative: %w", ErrInvalidInput)
	}
	return nil
}

func defaultStatus(status Status) Status {
	switch status {
	case StatusNotInvited, StatusInvited, StatusConfirmed, StatusDeclined:
		return status
	default:
		return StatusNotInvited
	}
}

func normalizeFamily(family *string) *string {
	if family == nil {
		return nil
	}
	value := strings.TrimSpace(*family)
	if value == "" {
		return nil
	}
	return &value
}

// The role only means something for godparents; it is cleared otherwise.
func godparentRole(isGodparent bool, role *GodparentRole) *GodparentRole {
	if !isGodparent || role == nil {
		return nil
	}
	switch *role {
	case GodparentBestMan, GodparentMaidOfHonor, GodparentGroomsman, GodparentBridesmaid:
		return role
	default:
		return nil
	}
}
