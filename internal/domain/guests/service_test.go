package guests

import (
	"context"
	"errors"
	"testing"
)

type fakeGuestRepo struct {
	guests map[string]*Guest
}

func newFakeGuestRepo() *fakeGuestRepo {
	return &fakeGuestRepo{guests: map[string]*Guest{}}
}

func (f *fakeGuestRepo) List(ctx context.Context, eventID string) ([]Guest, error) {
	var items []Guest
	for _, g := range f.guests {
		if g.EventID == eventID {
			items = append(items, *g)
		}
	}
	return items, nil
}

func (f *fakeGuestRepo) GetByID(ctx context.Context, eventID, guestID string) (*Guest, error) {
	g, ok := f.guests[guestID]
	if !ok || g.EventID != eventID {
		return nil, ErrGuestNotFound
	}
	return g, nil
}

func (f *fakeGuestRepo) Create(ctx context.Context, g *Guest) error {
	f.guests[g.ID] = g
	return nil
}

func (f *fakeGuestRepo) Update(ctx context.Context, g *Guest) error {
	f.guests[g.ID] = g
	return nil
}

func (f *fakeGuestRepo) Delete(ctx context.Context, eventID, guestID string) (bool, error) {
	g, ok := f.guests[guestID]
	if !ok || g.EventID != eventID {
		return false, nil
	}
	delete(f.guests, guestID)
	return true, nil
}

func strPtr(v string) *string { return &v }

func rolePtr(r GodparentRole) *GodparentRole { return &r }

func TestCreateGuestDefaultsAndNormalization(t *testing.T) {
	svc := NewService(newFakeGuestRepo())

	g, err := svc.Create(context.Background(), CreateInput{
		EventID: "evt-1",
		Name:    " Beatriz ",
		Family:  strPtr("  "),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if g.Name != "Beatriz" {
		t.Fatalf("expected trimmed name, got %q", g.Name)
	}
	if g.Status != StatusNotInvited {
		t.Fatalf("expected default status, got %q", g.Status)
	}
	if g.Family != nil {
		t.Fatalf("blank family label must normalize to nil, got %q", *g.Family)
	}
	if g.Headcount() != 1 {
		t.Fatalf("expected headcount 1, got %d", g.Headcount())
	}
}

func TestCreateGuestGodparentRole(t *testing.T) {
	svc := NewService(newFakeGuestRepo())

	// Role is dropped when the guest is not a godparent.
	g, err := svc.Create(context.Background(), CreateInput{
		EventID:       "evt-1",
		Name:          "Carla",
		GodparentRole: rolePtr(GodparentMaidOfHonor),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if g.GodparentRole != nil {
		t.Fatalf("role must be cleared for non-godparents")
	}

	g, err = svc.Create(context.Background(), CreateInput{
		EventID:       "evt-1",
		Name:          "Davi",
		IsGodparent:   true,
		GodparentRole: rolePtr(GodparentBestMan),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if g.GodparentRole == nil || *g.GodparentRole != GodparentBestMan {
		t.Fatalf("expected best_man role, got %v", g.GodparentRole)
	}

	g, err = svc.Create(context.Background(), CreateInput{
		EventID:       "evt-1",
		Name:          "Edu",
		IsGodparent:   true,
		GodparentRole: rolePtr(GodparentRole("bogus")),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if g.GodparentRole != nil {
		t.Fatalf("unknown role must be dropped, got %v", *g.GodparentRole)
	}
}

func TestCreateGuestValidation(t *testing.T) {
	svc := NewService(newFakeGuestRepo())

	if _, err := svc.Create(context.Background(), CreateInput{EventID: "evt-1", Name: " "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateInput{EventID: "evt-1", Name: "Ana", Companions: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative companions, got %v", err)
	}
}

func TestDeleteGuestNotFound(t *testing.T) {
	svc := NewService(newFakeGuestRepo())

	if err := svc.Delete(context.Background(), "evt-1", "missing"); !errors.Is(err, ErrGuestNotFound) {
		t.Fatalf("expected ErrGuestNotFound, got %v", err)
	}
}
