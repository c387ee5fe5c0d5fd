package guests

import "time"

type Status string

const (
	StatusNotInvited Status = "not_invited"
	StatusInvited    Status = "invited"
	StatusConfirmed  Status = "confirmed"
	StatusDeclined   Status = "declined"
)

type GodparentRole string

const (
	GodparentBestMan     GodparentRole = "best_man"
	GodparentMaidOfHonor GodparentRole = "maid_of_honor"
	GodparentGroomsman   GodparentRole = "groomsman"
	GodparentBridesmaid  GodparentRole = "bridesmaid"
)

type Guest struct {
	ID            string         `gorm:"type:uuid;primaryKey"`
	EventID       string         `gorm:"type:uuid;index;not null"`
	Name          string         `gorm:"not null"`
	Companions    int            `gorm:"not null;default:0"`
	Phone         *string        `gorm:"type:text"`
	AltContact    *string        `gorm:"type:text"`
	Status        Status         `gorm:"size:12;not null"`
	Family        *string        `gorm:"type:text"`
	IsGodparent   bool           `gorm:"not null;default:false"`
	GodparentRole *GodparentRole `gorm:"size:16"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
}

// Headcount is the guest plus their companions.
func (g Guest) Headcount() int {
	return 1 + g.Companions
}

type CreateInput struct {
	EventID       string
	Name          string
	Companions    int
	Phone         *string
	AltContact    *string
	Status        Status
	Family        *string
	IsGodparent   bool
	GodparentRole *GodparentRole
}

type UpdateInput struct {
	ID            string
	EventID       string
	Name          string
	Companions    int
	Phone         *string
	AltContact    *string
	Status        Status
	Family        *string
	IsGodparent   bool
	GodparentRole *GodparentRole
}
