package registry

import "context"

type Repository interface {
	List(ctx context.Context, eventID string) ([]Item, error)
	GetByID(ctx context.Context, eventID, itemID string) (*Item, error)
	Create(ctx context.Context, i *Item) error
	Update(ctx context.Context, i *Item) error
	Delete(ctx context.Context, eventID, itemID string) (bool, error)
}
