package handler

import (
	"net/http"

	metricsdomain "wedding-planner-go/internal/domain/metrics"
	"wedding-planner-go/pkg/format"
)

type dashboardFormatted struct {
	EventDate     string          `json:"event_date"`
	DaysToEvent   string          `json:"days_to_event"`
	TotalDeposits string          `json:"total_deposits"`
	FinancialGoal string          `json:"financial_goal"`
	Remaining     string          `json:"remaining"`
	TaskProgress  format.Progress `json:"task_progress"`
	GoalProgress  format.Progress `json:"goal_progress"`
}

type dashboardResponse struct {
	metricsdomain.Dashboard
	Formatted dashboardFormatted `json:"formatted"`
}

// Dashboard aggregates every section of the overview screen in one call.
// The formatted block carries display-ready strings so clients do not
// reimplement locale rules.
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	dashboard, err := h.Metrics.Dashboard(r.Context(), e)
	if err != nil {
		h.log.InternalError("dashboard: aggregation failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	f := format.New(e.Currency, "pt-BR")
	writeJSON(w, http.StatusOK, dashboardResponse{
		Dashboard: dashboard,
		Formatted: dashboardFormatted{
			EventDate:     format.Date(dashboard.EventDate),
			DaysToEvent:   format.RelativeDays(dashboard.DaysToEvent),
			TotalDeposits: f.Currency(dashboard.Financial.TotalDeposits),
			FinancialGoal: f.Currency(dashboard.Financial.FinancialGoal),
			Remaining:     f.Currency(dashboard.Financial.Remaining),
			TaskProgress:  format.Percentage(dashboard.Tasks.Progress),
			GoalProgress:  format.Percentage(dashboard.Financial.Progress),
		},
	})
}

type financeSummaryFormatted struct {
	TotalDeposits  string          `json:"total_deposits"`
	TotalEstimated string          `json:"total_estimated"`
	TotalActual    string          `json:"total_actual"`
	Remaining      string          `json:"remaining"`
	GoalProgress   format.Progress `json:"goal_progress"`
}

type financeSummaryResponse struct {
	Summary        metricsdomain.FinancialSummary `json:"summary"`
	CategoryTotals []metricsdomain.CategoryTotal  `json:"category_totals"`
	Variance       metricsdomain.VarianceReport   `json:"variance"`
	Formatted      financeSummaryFormatted        `json:"formatted"`
}

func (h *Handlers) FinanceSummary(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	summary, totals, variance, err := h.Metrics.FinancialReport(r.Context(), e)
	if err != nil {
		h.log.InternalError("finance.summary: aggregation failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	f := format.New(e.Currency, "pt-BR")
	writeJSON(w, http.StatusOK, financeSummaryResponse{
		Summary:        summary,
		CategoryTotals: totals,
		Variance:       variance,
		Formatted: financeSummaryFormatted{
			TotalDeposits:  f.Currency(summary.TotalDeposits),
			TotalEstimated: f.Currency(summary.TotalEstimated),
			TotalActual:    f.Currency(summary.TotalActual),
			Remaining:      f.Currency(summary.Remaining),
			GoalProgress:   format.Percentage(summary.Progress),
		},
	})
}
