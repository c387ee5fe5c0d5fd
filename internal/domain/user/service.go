package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type Service struct {
	repo       Repository
	sessionTTL time.Duration
	now        func() time.Time
}

func NewService(repo Repository, sessionTTL time.Duration) *Service {
	if sessionTTL <= 0 {
		sessionTTL = 7 * 24 * time.Hour
	}
	return &Service{
		repo:       repo,
		sessionTTL: sessionTTL,
		now:        time.Now,
	}
}

func (s *Service) Register(ctx context.Context, input RegisterInput) (*User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" {
		return nil, fmt.Errorf("name is required: %w", ErrInvalidInput)
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("valid email is required: %w", ErrInvalidInput)
	}
	if len(input.Password) < 6 {
		return nil, fmt.Errorf("password must be at least 6 characters: %w", ErrInvalidInput)
	}

	taken, err := s.repo.CountUsersByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role != RolePartyA && role != RolePartyB {
		role = RolePartyA
	}

	u := User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}

	if err := s.repo.CreateUser(ctx, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login verifies credentials and opens a new session. A missing user and a
// wrong password both return ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, *User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, nil, ErrInvalidCredentials
	}

	u, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if err == ErrUserNotFound {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}

	session := Session{
		Token:     uuid.NewString(),
		UserID:    u.ID,
		ExpiresAt: s.now().Add(s.sessionTTL),
	}
	if err := s.repo.CreateSession(ctx, &session); err != nil {
		return nil, nil, err
	}

	return &session, u, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	deleted, err := s.repo.DeleteSession(ctx, token)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrSessionNotFound
	}
	return nil
}

// Resolve maps an opaque session token to its user. Expired sessions are
// treated as missing and cleaned up opportunistically.
func (s *Service) Resolve(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}

	session, err := s.repo.GetSession(ctx, token)
	if err != nil {
		return nil, err
	}

	if !session.ExpiresAt.After(s.now()) {
		_, _ = s.repo.DeleteSession(ctx, token)
		return nil, ErrSessionNotFound
	}

	return s.repo.GetUserByID(ctx, session.UserID)
}
