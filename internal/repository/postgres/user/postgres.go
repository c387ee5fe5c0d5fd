package user

import (
	"context"
	"errors"
	"time"

	userdomain "wedding-planner-go/internal/domain/user"

	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, u *userdomain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *PostgresRepository) GetUserByID(ctx context.Context, id string) (*userdomain.User, error) {
	var u userdomain.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userdomain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) GetUserByEmail(ctx context.Context, email string) (*userdomain.User, error) {
	var u userdomain.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userdomain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) CountUsersByEmail(ctx context.Context, email string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&userdomain.User{}).
		Where("email = ?", email).
		Count(&count).Error
	return count, err
}

func (r *PostgresRepository) CreateSession(ctx context.Context, s *userdomain.Session) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *PostgresRepository) GetSession(ctx context.Context, token string) (*userdomain.Session, error) {
	var s userdomain.Session
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userdomain.ErrSessionNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *PostgresRepository) DeleteSession(ctx context.Context, token string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&userdomain.Session{}, "token = ?", token)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&userdomain.Session{}, "expires_at <= ?", now)
	return result.RowsAffected, result.Error
}
