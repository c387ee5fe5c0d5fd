package event

import "context"

type Repository interface {
	Create(ctx context.Context, e *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	GetByUserID(ctx context.Context, userID string) (*Event, error)
	CountByUserID(ctx context.Context, userID string) (int64, error)
	Update(ctx context.Context, e *Event) error
}
