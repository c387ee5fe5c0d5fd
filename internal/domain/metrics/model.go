package metrics

import (
	"time"

	"wedding-planner-go/internal/domain/guests"
	"wedding-planner-go/internal/domain/tasks"
)

// Urgency classifies an incomplete task relative to its deadline.
type Urgency string

const (
	UrgencyNone    Urgency = "none"
	UrgencyUrgent  Urgency = "urgent"
	UrgencyOverdue Urgency = "overdue"
)

type TaskSummary struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Progress  float64 `json:"progress"`
}

type UpcomingTask struct {
	Task      tasks.Task `json:"task"`
	DaysUntil int        `json:"days_until"`
	Urgency   Urgency    `json:"urgency"`
}

type FinancialSummary struct {
	TotalDeposits  float64 `json:"total_deposits"`
	FinancialGoal  float64 `json:"financial_goal"`
	Progress       float64 `json:"progress"`
	Remaining      float64 `json:"remaining"`
	TotalEstimated float64 `json:"total_estimated"`
	TotalActual    float64 `json:"total_actual"`
	Difference     float64 `json:"difference"`
}

type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

type BudgetVariance struct {
	BudgetID     string  `json:"budget_id"`
	Category     string  `json:"category"`
	Amount       float64 `json:"amount"`
	Spent        float64 `json:"spent"`
	Remaining    float64 `json:"remaining"`
	Percentage   float64 `json:"percentage"`
	IsOverBudget bool    `json:"is_over_budget"`
}

// VarianceReport pairs per-budget variance with spend in categories that
// have no budget row. Unbudgeted spend is never aggregated against a budget.
type VarianceReport struct {
	Budgets    []BudgetVariance `json:"budgets"`
	Unbudgeted []CategoryTotal  `json:"unbudgeted"`
}

type GuestSummary struct {
	Total              int `json:"total"`
	Headcount          int `json:"headcount"`
	ConfirmedHeadcount int `json:"confirmed_headcount"`
	ConfirmedGuests    int `json:"confirmed_guests"`
	InvitedGuests      int `json:"invited_guests"`
	DeclinedGuests     int `json:"declined_guests"`
	Godparents         int `json:"godparents"`
}

type RegistrySummary struct {
	Total     int     `json:"total"`
	Purchased int     `json:"purchased"`
	Progress  float64 `json:"progress"`
}

// FamilyGroup is one partition of the guest list by family label. The
// unassigned group collects guests with no label.
type FamilyGroup struct {
	Family     string         `json:"family"`
	Unassigned bool           `json:"unassigned"`
	Guests     []guests.Guest `json:"guests"`
	Headcount  int            `json:"headcount"`
}

type Dashboard struct {
	Tasks       TaskSummary      `json:"tasks"`
	Upcoming    []UpcomingTask   `json:"upcoming_tasks"`
	Financial   FinancialSummary `json:"financial"`
	Guests      GuestSummary     `json:"guests"`
	Registry    RegistrySummary  `json:"registry"`
	DaysToEvent int              `json:"days_to_event"`
	EventDate   time.Time        `json:"event_date"`
	CoupleName  string           `json:"couple_name"`
	Currency    string           `json:"currency"`
}
