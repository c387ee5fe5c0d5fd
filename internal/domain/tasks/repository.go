package tasks

import "context"

type Repository interface {
	List(ctx context.Context, eventID string) ([]Task, error)
	GetByID(ctx context.Context, eventID, taskID string) (*Task, error)
	Create(ctx context.Context, t *Task) error
	Update(ctx context.Context, t *Task) error
	Delete(ctx context.Context, eventID, taskID string) (bool, error)
}
