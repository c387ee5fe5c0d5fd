package documents

import "time"

type Document struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	EventID     string    `gorm:"type:uuid;index;not null"`
	Type        string    `gorm:"not null"`
	Title       string    `gorm:"not null"`
	Description *string   `gorm:"type:text"`
	Link        *string   `gorm:"type:text"`
	Notes       *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

type CreateInput struct {
	EventID     string
	Type        string
	Title       string
	Description *string
	Link        *string
	Notes       *string
}

type UpdateInput struct {
	ID          string
	EventID     string
	Type        string
	Title       string
	Description *string
	Link        *string
	Notes       *string
}
