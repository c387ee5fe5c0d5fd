package planning

import (
	"context"
	"errors"
	"testing"
)

type fakePlanningRepo struct {
	suppliers map[string]*Supplier

	// locations keyed by event_id + kind, mirroring the store's
	// conditional upsert on that pair.
	locations map[string]*Location
}

func newFakePlanningRepo() *fakePlanningRepo {
	return &fakePlanningRepo{
		suppliers: map[string]*Supplier{},
		locations: map[string]*Location{},
	}
}

func (f *fakePlanningRepo) ListSuppliers(ctx context.Context, eventID string) ([]Supplier, error) {
	var items []Supplier
	for _, s := range f.suppliers {
		if s.EventID == eventID {
			items = append(items, *s)
		}
	}
	return items, nil
}

func (f *fakePlanningRepo) GetSupplierByID(ctx context.Context, eventID, supplierID string) (*Supplier, error) {
	s, ok := f.suppliers[supplierID]
	if !ok || s.EventID != eventID {
		return nil, ErrSupplierNotFound
	}
	return s, nil
}

func (f *fakePlanningRepo) CreateSupplier(ctx context.Context, s *Supplier) error {
	f.suppliers[s.ID] = s
	return nil
}

func (f *fakePlanningRepo) UpdateSupplier(ctx context.Context, s *Supplier) error {
	f.suppliers[s.ID] = s
	return nil
}

func (f *fakePlanningRepo) DeleteSupplier(ctx context.Context, eventID, supplierID string) (bool, error) {
	s, ok := f.suppliers[supplierID]
	if !ok || s.EventID != eventID {
		return false, nil
	}
	delete(f.suppliers, supplierID)
	return true, nil
}

func (f *fakePlanningRepo) ListLocations(ctx context.Context, eventID string) ([]Location, error) {
	var items []Location
	for _, l := range f.locations {
		if l.EventID == eventID {
			items = append(items, *l)
		}
	}
	return items, nil
}

func (f *fakePlanningRepo) UpsertLocation(ctx context.Context, l *Location) error {
	key := l.EventID + "/" + string(l.Kind)
	if existing, ok := f.locations[key]; ok {
		existing.Name = l.Name
		existing.Address = l.Address
		existing.Time = l.Time
		existing.MapsLink = l.MapsLink
		*l = *existing
		return nil
	}
	stored := *l
	f.locations[key] = &stored
	return nil
}

func (f *fakePlanningRepo) DeleteLocation(ctx context.Context, eventID, locationID string) (bool, error) {
	for key, l := range f.locations {
		if l.EventID == eventID && l.ID == locationID {
			delete(f.locations, key)
			return true, nil
		}
	}
	return false, nil
}

func TestUpsertLocationReplacesSameKind(t *testing.T) {
	repo := newFakePlanningRepo()
	svc := NewService(repo)

	first, err := svc.UpsertLocation(context.Background(), UpsertLocationInput{
		EventID: "evt-1",
		Kind:    LocationCeremony,
		Name:    "Igreja Matriz",
		Address: "Praca Central, 1",
		Time:    "16:00",
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second, err := svc.UpsertLocation(context.Background(), UpsertLocationInput{
		EventID: "evt-1",
		Kind:    LocationCeremony,
		Name:    "Capela do Mar",
		Address: "Av. Beira Mar, 50",
		Time:    "17:00",
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("upsert must keep the surviving row's id, got %q and %q", first.ID, second.ID)
	}
	if second.Name != "Capela do Mar" {
		t.Fatalf("expected replaced name, got %q", second.Name)
	}

	items, _ := repo.ListLocations(context.Background(), "evt-1")
	if len(items) != 1 {
		t.Fatalf("expected one venue per kind, got %d", len(items))
	}
}

func TestUpsertLocationKindsAreIndependent(t *testing.T) {
	repo := newFakePlanningRepo()
	svc := NewService(repo)

	if _, err := svc.UpsertLocation(context.Background(), UpsertLocationInput{EventID: "evt-1", Kind: LocationCeremony, Name: "A", Address: "B", Time: "16:00"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if _, err := svc.UpsertLocation(context.Background(), UpsertLocationInput{EventID: "evt-1", Kind: LocationReception, Name: "C", Address: "D", Time: "19:00"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	items, _ := repo.ListLocations(context.Background(), "evt-1")
	if len(items) != 2 {
		t.Fatalf("expected ceremony and reception venues, got %d", len(items))
	}
}

func TestUpsertLocationValidation(t *testing.T) {
	svc := NewService(newFakePlanningRepo())

	if _, err := svc.UpsertLocation(context.Background(), UpsertLocationInput{EventID: "evt-1", Kind: LocationKind("bogus"), Name: "A", Address: "B", Time: "16:00"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for kind, got %v", err)
	}
	if _, err := svc.UpsertLocation(context.Background(), UpsertLocationInput{EventID: "evt-1", Kind: LocationCeremony, Name: " ", Address: "B", Time: "16:00"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for name, got %v", err)
	}
}

func TestCreateSupplierDefaults(t *testing.T) {
	svc := NewService(newFakePlanningRepo())

	s, err := svc.CreateSupplier(context.Background(), CreateSupplierInput{
		EventID:     "evt-1",
		Type:        "buffet",
		Name:        " Sabor e Festa ",
		AgreedValue: 8000,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if s.Name != "Sabor e Festa" {
		t.Fatalf("expected trimmed name, got %q", s.Name)
	}
	if s.PaymentStatus != PaymentUnpaid {
		t.Fatalf("expected default payment status, got %q", s.PaymentStatus)
	}
}

func TestDeleteSupplierNotFound(t *testing.T) {
	svc := NewService(newFakePlanningRepo())

	if err := svc.DeleteSupplier(context.Background(), "evt-1", "missing"); !errors.Is(err, ErrSupplierNotFound) {
		t.Fatalf("expected ErrSupplierNotFound, got %v", err)
	}
}
