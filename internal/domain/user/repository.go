package user

import (
	"context"
	"time"
)

type Repository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	CountUsersByEmail(ctx context.Context, email string) (int64, error)

	CreateSession(ctx context.Context, s *Session) error
	GetSession(ctx context.Context, token string) (*Session, error)
	DeleteSession(ctx context.Context, token string) (bool, error)
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}
