package handler

import (
	"errors"
	"net/http"
	"time"

	financedomain "wedding-planner-go/internal/domain/finance"
	"github.com/go-chi/chi/v5"
)

type expenseRequest struct {
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	EstimatedValue float64  `json:"estimated_value"`
	ActualValue    *float64 `json:"actual_value"`
	PaidBy         string   `json:"paid_by"`
	PaymentStatus  string   `json:"payment_status"`
}

type expenseResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	EstimatedValue float64   `json:"estimated_value"`
	ActualValue    *float64  `json:"actual_value"`
	EffectiveValue float64   `json:"effective_value"`
	PaidBy         string    `json:"paid_by"`
	PaymentStatus  string    `json:"payment_status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type expenseListResponse struct {
	Items []expenseResponse `json:"items"`
	Total int               `json:"total"`
}

type depositRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	PaidBy      string  `json:"paid_by"`
	Date        string  `json:"date"`
}

type depositResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	PaidBy      string    `json:"paid_by"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

type depositListResponse struct {
	Items []depositResponse `json:"items"`
	Total int               `json:"total"`
}

type budgetRequest struct {
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description *string `json:"description"`
}

type budgetResponse struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type budgetListResponse struct {
	Items []budgetResponse `json:"items"`
	Total int              `json:"total"`
}

func toExpenseResponse(e financedomain.Expense) expenseResponse {
	return expenseResponse{
		ID:             e.ID,
		Name:           e.Name,
		Category:       e.Category,
		EstimatedValue: e.EstimatedValue,
		ActualValue:    e.ActualValue,
		EffectiveValue: e.EffectiveValue(),
		PaidBy:         string(e.PaidBy),
		PaymentStatus:  string(e.PaymentStatus),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func toDepositResponse(d financedomain.Deposit) depositResponse {
	return depositResponse{
		ID:          d.ID,
		Description: d.Description,
		Amount:      d.Amount,
		PaidBy:      string(d.PaidBy),
		Date:        d.Date,
		CreatedAt:   d.CreatedAt,
	}
}

func toBudgetResponse(b financedomain.Budget) budgetResponse {
	return budgetResponse{
		ID:          b.ID,
		Category:    b.Category,
		Amount:      b.Amount,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (h *Handlers) ListExpenses(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	items, err := h.Finance.ListExpenses(r.Context(), e.ID)
	if err != nil {
		h.log.InternalError("finance.expenses.list: list failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]expenseResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toExpenseResponse(item))
	}

	writeJSON(w, http.StatusOK, expenseListResponse{Items: response, Total: len(response)})
}

func (h *Handlers) CreateExpense(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	var req expenseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	expense, err := h.Finance.CreateExpense(r.Context(), financedomain.CreateExpenseInput{
		EventID:        e.ID,
		Name:           req.Name,
		Category:       req.Category,
		EstimatedValue: req.EstimatedValue,
		ActualValue:    req.ActualValue,
		PaidBy:         financedomain.Payer(req.PaidBy),
		PaymentStatus:  financedomain.PaymentStatus(req.PaymentStatus),
	})
	if err != nil {
		if errors.Is(err, financedomain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		h.log.InternalError("finance.expenses.create: create failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toExpenseResponse(*expense))
}

func (h *Handlers) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	var req expenseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	expense, err := h.Finance.UpdateExpense(r.Context(), financedomain.UpdateExpenseInput{
		ID:             chi.URLParam(r, "id"),
		EventID:        e.ID,
		Name:           req.Name,
		Category:       req.Category,
		EstimatedValue: req.EstimatedValue,
		ActualValue:    req.ActualValue,
		PaidBy:         financedomain.Payer(req.PaidBy),
		PaymentStatus:  financedomain.PaymentStatus(req.PaymentStatus),
	})
	if err != nil {
		if errors.Is(err, financedomain.ErrExpenseNotFound) {
			h.log.BusinessError("finance.expenses.update: expense not found", err, "event_id", e.ID)
			writeError(w, http.StatusNotFound, "expense_not_found", "expense not found")
			return
		}
		if errors.Is(err, financedomain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		h.log.InternalError("finance.expenses.update: update failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toExpenseResponse(*expense))
}

func (h *Handlers) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	if err := h.Finance.DeleteExpense(r.Context(), e.ID, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, financedomain.ErrExpenseNotFound) {
			h.log.BusinessError("finance.expenses.delete: expense not found", err, "event_id", e.ID)
			writeError(w, http.StatusNotFound, "expense_not_found", "expense not found")
			return
		}
		h.log.InternalError("finance.expenses.delete: delete failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListDeposits(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	items, err := h.Finance.ListDeposits(r.Context(), e.ID)
	if err != nil {
		h.log.InternalError("finance.deposits.list: list failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]depositResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toDepositResponse(item))
	}

	writeJSON(w, http.StatusOK, depositListResponse{Items: response, Total: len(response)})
}

func (h *Handlers) CreateDeposit(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	var req depositRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	date, err := parseDateRequired(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid date")
		return
	}

	deposit, err := h.Finance.CreateDeposit(r.Context(), financedomain.CreateDepositInput{
		EventID:     e.ID,
		Description: req.Description,
		Amount:      req.Amount,
		PaidBy:      financedomain.Payer(req.PaidBy),
		Date:        date,
	})
	if err != nil {
		if errors.Is(err, financedomain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		h.log.InternalError("finance.deposits.create: create failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toDepositResponse(*deposit))
}

func (h *Handlers) UpdateDeposit(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	var req depositRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	date, err := parseDateRequired(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid date")
		return
	}

	deposit, err := h.Finance.UpdateDeposit(r.Context(), financedomain.UpdateDepositInput{
		ID:          chi.URLParam(r, "id"),
		EventID:     e.ID,
		Description: req.Description,
		Amount:      req.Amount,
		PaidBy:      financedomain.Payer(req.PaidBy),
		Date:        date,
	})
	if err != nil {
		if errors.Is(err, financedomain.ErrDepositNotFound) {
			h.log.BusinessError("finance.deposits.update: deposit not found", err, "event_id", e.ID)
			writeError(w, http.StatusNotFound, "deposit_not_found", "deposit not found")
			return
		}
		if errors.Is(err, financedomain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		h.log.InternalError("finance.deposits.update: update failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toDepositResponse(*deposit))
}

func (h *Handlers) DeleteDeposit(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	if err := h.Finance.DeleteDeposit(r.Context(), e.ID, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, financedomain.ErrDepositNotFound) {
			h.log.BusinessError("finance.deposits.delete: deposit not found", err, "event_id", e.ID)
			writeError(w, http.StatusNotFound, "deposit_not_found", "deposit not found")
			return
		}
		h.log.InternalError("finance.deposits.delete: delete failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListBudgets(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	items, err := h.Finance.ListBudgets(r.Context(), e.ID)
	if err != nil {
		h.log.InternalError("finance.budgets.list: list failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]budgetResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toBudgetResponse(item))
	}

	writeJSON(w, http.StatusOK, budgetListResponse{Items: response, Total: len(response)})
}

// UpsertBudget creates the budget for a category or replaces the amount of
// the existing one. Same verb for both, so the client never races itself
// into duplicate categories.
func (h *Handlers) UpsertBudget(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	var req budgetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	budget, err := h.Finance.UpsertBudget(r.Context(), financedomain.UpsertBudgetInput{
		EventID:     e.ID,
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, financedomain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		h.log.InternalError("finance.budgets.upsert: upsert failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toBudgetResponse(*budget))
}

func (h *Handlers) DeleteBudget(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	if err := h.Finance.DeleteBudget(r.Context(), e.ID, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, financedomain.ErrBudgetNotFound) {
			h.log.BusinessError("finance.budgets.delete: budget not found", err, "event_id", e.ID)
			writeError(w, http.StatusNotFound, "budget_not_found", "budget not found")
			return
		}
		h.log.InternalError("finance.budgets.delete: delete failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
