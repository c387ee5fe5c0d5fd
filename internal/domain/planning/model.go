package planning

import "time"

type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

type Supplier struct {
	ID            string        `gorm:"type:uuid;primaryKey"`
	EventID       string        `gorm:"type:uuid;index;not null"`
	Type          string        `gorm:"not null"`
	Name          string        `gorm:"not null"`
	ContactName   *string       `gorm:"type:text"`
	Phone         *string       `gorm:"type:text"`
	Email         *string       `gorm:"type:text"`
	AgreedValue   float64       `gorm:"type:numeric(12,2);not null"`
	PaymentStatus PaymentStatus `gorm:"size:10;not null"`
	Notes         *string       `gorm:"type:text"`
	CreatedAt     time.Time     `gorm:"autoCreateTime"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime"`
}

type LocationKind string

const (
	LocationCeremony  LocationKind = "ceremony"
	LocationReception LocationKind = "reception"
)

// Location is unique per (event, kind): an event has at most one ceremony
// venue and one reception venue, and saving again replaces the details.
type Location struct {
	ID        string       `gorm:"type:uuid;primaryKey"`
	EventID   string       `gorm:"type:uuid;not null;uniqueIndex:idx_locations_event_kind"`
	Kind      LocationKind `gorm:"size:12;not null;uniqueIndex:idx_locations_event_kind"`
	Name      string       `gorm:"not null"`
	Address   string       `gorm:"not null"`
	Time      string       `gorm:"not null"`
	MapsLink  *string      `gorm:"type:text"`
	CreatedAt time.Time    `gorm:"autoCreateTime"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime"`
}

type CreateSupplierInput struct {
	EventID       string
	Type          string
	Name          string
	ContactName   *string
	Phone         *string
	Email         *string
	AgreedValue   float64
	PaymentStatus PaymentStatus
	Notes         *string
}

type UpdateSupplierInput struct {
	ID            string
	EventID       string
	Type          string
	Name          string
	ContactName   *string
	Phone         *string
	Email         *string
	AgreedValue   float64
	PaymentStatus PaymentStatus
	Notes         *string
}

type UpsertLocationInput struct {
	EventID  string
	Kind     LocationKind
	Name     string
	Address  string
	Time     string
	MapsLink *string
}
