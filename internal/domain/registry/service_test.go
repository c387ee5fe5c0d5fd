package registry

import (
	"context"
	"errors"
	"testing"
)

type fakeRegistryRepo struct {
	items map[string]*Item
}

func newFakeRegistryRepo() *fakeRegistryRepo {
	return &fakeRegistryRepo{items: map[string]*Item{}}
}

func (f *fakeRegistryRepo) List(ctx context.Context, eventID string) ([]Item, error) {
	var items []Item
	for _, i := range f.items {
		if i.EventID == eventID {
			items = append(items, *i)
		}
	}
	return items, nil
}

func (f *fakeRegistryRepo) GetByID(ctx context.Context, eventID, itemID string) (*Item, error) {
	i, ok := f.items[itemID]
	if !ok || i.EventID != eventID {
		return nil, ErrItemNotFound
	}
	return i, nil
}

func (f *fakeRegistryRepo) Create(ctx context.Context, i *Item) error {
	f.items[i.ID] = i
	return nil
}

func (f *fakeRegistryRepo) Update(ctx context.Context, i *Item) error {
	f.items[i.ID] = i
	return nil
}

func (f *fakeRegistryRepo) Delete(ctx context.Context, eventID, itemID string) (bool, error) {
	i, ok := f.items[itemID]
	if !ok || i.EventID != eventID {
		return false, nil
	}
	delete(f.items, itemID)
	return true, nil
}

func TestCreateItemDefaultsToPending(t *testing.T) {
	svc := NewService(newFakeRegistryRepo())

	i, err := svc.Create(context.Background(), CreateInput{
		EventID:  "evt-1",
		Name:     "Jogo de panelas",
		Category: "cozinha",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if i.Status != StatusPending {
		t.Fatalf("expected pending status, got %q", i.Status)
	}
}

func TestSetStatus(t *testing.T) {
	repo := newFakeRegistryRepo()
	svc := NewService(repo)

	i, err := svc.Create(context.Background(), CreateInput{
		EventID:  "evt-1",
		Name:     "Jogo de panelas",
		Category: "cozinha",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.SetStatus(context.Background(), "evt-1", i.ID, StatusPurchased)
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if updated.Status != StatusPurchased {
		t.Fatalf("expected purchased, got %q", updated.Status)
	}

	if _, err := svc.SetStatus(context.Background(), "evt-1", i.ID, Status("bogus")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.SetStatus(context.Background(), "evt-1", "missing", StatusPending); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestCreateItemValidation(t *testing.T) {
	svc := NewService(newFakeRegistryRepo())

	negative := -5.0
	cases := []CreateInput{
		{EventID: "evt-1", Name: " ", Category: "cozinha"},
		{EventID: "evt-1", Name: "Panela", Category: " "},
		{EventID: "evt-1", Name: "Panela", Category: "cozinha", EstimatedPrice: &negative},
	}
	for i, input := range cases {
		if _, err := svc.Create(context.Background(), input); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}
