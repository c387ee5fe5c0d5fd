package finance

import "time"

type Payer string

const (
	PayerPartyA Payer = "party_a"
	PayerPartyB Payer = "party_b"
	PayerBoth   Payer = "both"
)

type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

type Expense struct {
	ID             string        `gorm:"type:uuid;primaryKey"`
	EventID        string        `gorm:"type:uuid;index;not null"`
	Name           string        `gorm:"not null"`
	Category       string        `gorm:"not null"`
	EstimatedValue float64       `gorm:"type:numeric(12,2);not null"`
	ActualValue    *float64      `gorm:"type:numeric(12,2)"`
	PaidBy         Payer         `gorm:"size:10;not null"`
	PaymentStatus  PaymentStatus `gorm:"size:10;not null"`
	CreatedAt      time.Time     `gorm:"autoCreateTime"`
	UpdatedAt      time.Time     `gorm:"autoUpdateTime"`
}

// EffectiveValue is the actual value when recorded, otherwise the estimate.
// All aggregation works on this.
func (e Expense) EffectiveValue() float64 {
	if e.ActualValue != nil {
		return *e.ActualValue
	}
	return e.EstimatedValue
}

type Deposit struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	EventID     string    `gorm:"type:uuid;index;not null"`
	Description string    `gorm:"not null"`
	Amount      float64   `gorm:"type:numeric(12,2);not null"`
	PaidBy      Payer     `gorm:"size:10;not null"`
	Date        time.Time `gorm:"type:date;not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

// Budget is unique per (event, category); creating one for an existing
// category updates the row in place.
type Budget struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	EventID     string    `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_event_category"`
	Category    string    `gorm:"not null;uniqueIndex:idx_budgets_event_category"`
	Amount      float64   `gorm:"type:numeric(12,2);not null"`
	Description *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

type CreateExpenseInput struct {
	EventID        string
	Name           string
	Category       string
	EstimatedValue float64
	ActualValue    *float64
	PaidBy         Payer
	PaymentStatus  PaymentStatus
}

type UpdateExpenseInput struct {
	ID             string
	EventID        string
	Name           string
	Category       string
	EstimatedValue float64
	ActualValue    *float64
	PaidBy         Payer
	PaymentStatus  PaymentStatus
}

type CreateDepositInput struct {
	EventID     string
	Description string
	Amount      float64
	PaidBy      Payer
	Date        time.Time
}

type UpdateDepositInput struct {
	ID          string
	EventID     string
	Description string
	Amount      float64
	PaidBy      Payer
	Date        time.Time
}

type UpsertBudgetInput struct {
	EventID     string
	Category    string
	Amount      float64
	Description *string
}
