package planning

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

func (s *Service) ListSuppliers(ctx context.Context, eventID string) ([]Supplier, error) {
	return s.repo.ListSuppliers(ctx, eventID)
}

func (s *Service) CreateSupplier(ctx context.Context, input CreateSupplierInput) (*Supplier, error) {
	if err := validateSupplier(input.Type, input.Name, input.AgreedValue); err != nil {
		return nil, err
	}

	sup := Supplier{
		ID:            uuid.NewString(),
		EventID:       input.EventID,
		Type:          strings.TrimSpace(input.Type),
		Name:          strings.TrimSpace(input.Name),
		ContactName:   input.ContactName,
		Phone:         input.Phone,
		Email:         input.Email,
		AgreedValue:   input.AgreedValue,
		PaymentStatus: defaultPaymentStatus(input.PaymentStatus),
		Notes:         input.Notes,
	}

	if err := s.repo.CreateSupplier(ctx, &sup); err != nil {
		return nil, err
	}
	return &sup, nil
}

func (s *Service) UpdateSupplier(ctx context.Context, input UpdateSupplierInput) (*Supplier, error) {
	if err := validateSupplier(input.Type, input.Name, input.AgreedValue); err != nil {
		return nil, err
	}

	sup, err := s.repo.GetSupplierByID(ctx, input.EventID, input.ID)
	if err != nil {
		return nil, err
	}

	sup.Type = strings.TrimSpace(input.Type)
	sup.Name = strings.TrimSpace(input.Name)
	sup.ContactName = input.ContactName
	sup.Phone = input.Phone
	sup.Email = input.Email
	sup.AgreedValue = input.AgreedValue
	sup.PaymentStatus = defaultPaymentStatus(input.PaymentStatus)
	sup.Notes = input.Notes
	sup.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateSupplier(ctx, sup); err != nil {
		return nil, err
	}
	return sup, nil
}

func (s *Service) DeleteSupplier(ctx context.Context, eventID, supplierID string) error {
	deleted, err := s.repo.DeleteSupplier(ctx, eventID, supplierID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrSupplierNotFound
	}
	return nil
}

func (s *Service) ListLocations(ctx context.Context, eventID string) ([]Location, error) {
	return s.repo.ListLocations(ctx, eventID)
}

// UpsertLocation saves the venue for a kind, replacing the previous one if
// the event already had it.
func (s *Service) UpsertLocation(ctx context.Context, input UpsertLocationInput) (*Location, error) {
	if input.Kind != LocationCeremony && input.Kind != LocationReception {
		return nil, fmt.Errorf("invalid location kind: %w", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("name is required: %w", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Address) == "" {
		return nil, fmt.Errorf("address is required: %w", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Time) == "" {
		return nil, fmt.Errorf("time is required: %w", ErrInvalidInput)
	}

	l := Location{
		ID:       uuid.NewString(),
		EventID:  input.EventID,
		Kind:     input.Kind,
		Name:     strings.TrimSpace(input.Name),
		Address:  strings.TrimSpace(input.Address),
		Time:     strings.TrimSpace(input.Time),
		MapsLink: input.MapsLink,
	}

	if err := s.repo.UpsertLocation(ctx, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *Service) DeleteLocation(ctx context.Context, eventID, locationID string) error {
	deleted, err := s.repo.DeleteLocation(ctx, eventID, locationID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrLocationNotFound
	}
	return nil
}

func validateSupplier(supplierType, name string, agreedValue float64) error {
	if strings.TrimSpace(supplierType) == "" {
		return fmt.Errorf("type is required: %w", ErrInvalidInput)
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required: %w", ErrInvalidInput)
	}
	if agreedValue < 0 {
		return fmt.Errorf("agreed value must not be negative: %w", ErrInvalidInput)
	}
	return nil
}

func defaultPaymentStatus(p PaymentStatus) PaymentStatus {
	switch p {
	case PaymentUnpaid, PaymentPartial, PaymentPaid:
		return p
	default:
		return PaymentUnpaid
	}
}
