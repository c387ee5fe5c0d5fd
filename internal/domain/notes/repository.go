package notes

import "context"

type Repository interface {
	List(ctx context.Context, eventID string) ([]Note, error)
	GetByID(ctx context.Context, eventID, noteID string) (*Note, error)
	Create(ctx context.Context, n *Note) error
	Update(ctx context.Context, n *Note) error
	Delete(ctx context.Context, eventID, noteID string) (bool, error)
}
