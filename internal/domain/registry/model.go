package registry

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusPurchased Status = "purchased"
)

type Item struct {
	ID             string    `gorm:"type:uuid;primaryKey"`
	EventID        string    `gorm:"type:uuid;index;not null"`
	Name           string    `gorm:"not null"`
	Category       string    `gorm:"not null"`
	EstimatedPrice *float64  `gorm:"type:numeric(12,2)"`
	Store          *string   `gorm:"type:text"`
	Link           *string   `gorm:"type:text"`
	Status         Status    `gorm:"size:10;not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

type CreateInput struct {
	EventID        string
	Name           string
	Category       string
	EstimatedPrice *float64
	Store          *string
	Link           *string
	Status         Status
}

type UpdateInput struct {
	ID             string
	EventID        string
	Name           string
	Category       string
	EstimatedPrice *float64
	Store          *string
	Link           *string
	Status         Status
}
