package guests

import "context"

type Repository interface {
	List(ctx context.Context, eventID string) ([]Guest, error)
	GetByID(ctx context.Context, eventID, guestID string) (*Guest, error)
	Create(ctx context.Context, g *Guest) error
	Update(ctx context.Context, g *Guest) error
	Delete(ctx context.Context, eventID, guestID string) (bool, error)
}
