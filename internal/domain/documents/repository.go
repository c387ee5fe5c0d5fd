package documents

import "context"

type Repository interface {
	List(ctx context.Context, eventID string) ([]Document, error)
	GetByID(ctx context.Context, eventID, documentID string) (*Document, error)
	Create(ctx context.Context, d *Document) error
	Update(ctx context.Context, d *Document) error
	Delete(ctx context.Context, eventID, documentID string) (bool, error)
}
