package tasks

import "time"

type Stage string

const (
	StageMonths12To9 Stage = "months_12_9"
	StageMonths9To6  Stage = "months_9_6"
	StageMonths6To3  Stage = "months_6_3"
	StageMonths3To1  Stage = "months_3_1"
	StageWeddingWeek Stage = "wedding_week"
	StageWeddingDay  Stage = "wedding_day"
)

// Stages in planning order, earliest first.
var Stages = []Stage{
	StageMonths12To9,
	StageMonths9To6,
	StageMonths6To3,
	StageMonths3To1,
	StageWeddingWeek,
	StageWeddingDay,
}

type Responsible string

const (
	ResponsiblePartyA Responsible = "party_a"
	ResponsiblePartyB Responsible = "party_b"
	ResponsibleBoth   Responsible = "both"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Task struct {
	ID          string      `gorm:"type:uuid;primaryKey"`
	EventID     string      `gorm:"type:uuid;index;not null"`
	Description string      `gorm:"not null"`
	Deadline    time.Time   `gorm:"type:date;not null"`
	Stage       Stage       `gorm:"size:20;not null"`
	Responsible Responsible `gorm:"size:10;not null"`
	Priority    Priority    `gorm:"size:8;not null"`
	Completed   bool        `gorm:"not null;default:false"`
	CreatedAt   time.Time   `gorm:"autoCreateTime"`
	UpdatedAt   time.Time   `gorm:"autoUpdateTime"`
}

type CreateInput struct {
	EventID     string
	Description string
	Deadline    time.Time
	Stage       Stage
	Responsible Responsible
	Priority    Priority
}

type UpdateInput struct {
	ID          string
	EventID     string
	Description string
	Deadline    time.Time
	Stage       Stage
	Responsible Responsible
	Priority    Priority
	Completed   bool
}
