package user

import "time"

type Role string

const (
	RolePartyA Role = "party_a"
	RolePartyB Role = "party_b"
)

type User struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         Role      `gorm:"size:16;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// Session maps an opaque token to a user. Tokens are handed out at login
// and resolved once per request by the auth middleware.
type Session struct {
	Token     string    `gorm:"type:uuid;primaryKey"`
	UserID    string    `gorm:"type:uuid;index;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     Role
}
