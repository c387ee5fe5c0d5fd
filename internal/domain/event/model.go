package event

import "time"

// Event is the owning record for everything else in the system: tasks,
// expenses, guests and the rest all carry its id.
type Event struct {
	ID            string    `gorm:"type:uuid;primaryKey"`
	UserID        string    `gorm:"type:uuid;uniqueIndex;not null"`
	CoupleName    string    `gorm:"not null"`
	Date          time.Time `gorm:"not null"`
	City          string    `gorm:"not null"`
	State         string    `gorm:"not null"`
	CeremonyType  string    `gorm:"not null"`
	Currency      string    `gorm:"size:8;not null"`
	FinancialGoal float64   `gorm:"type:numeric(12,2);not null"`
	Theme         string    `gorm:"not null"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

type CreateInput struct {
	UserID        string
	CoupleName    string
	Date          time.Time
	City          string
	State         string
	CeremonyType  string
	Currency      string
	FinancialGoal float64
	Theme         string
}

type UpdateInput struct {
	ID            string
	UserID        string
	CoupleName    string
	Date          time.Time
	City          string
	State         string
	CeremonyType  string
	Currency      string
	FinancialGoal float64
	Theme         string
}
