package handler

import (
	"errors"
	"net/http"
	"time"

	eventdomain "wedding-planner-go/internal/domain/event"
	"wedding-planner-go/internal/transport/httpserver/middleware"
)

type eventRequest struct {
	CoupleName    string  `json:"couple_name"`
	Date          string  `json:"date"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	CeremonyType  string  `json:"ceremony_type"`
	Currency      string  `json:"currency"`
	FinancialGoal float64 `json:"financial_goal"`
	Theme         string  `json:"theme"`
}

type eventResponse struct {
	ID            string    `json:"id"`
	CoupleName    string    `json:"couple_name"`
	Date          time.Time `json:"date"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	CeremonyType  string    `json:"ceremony_type"`
	Currency      string    `json:"currency"`
	FinancialGoal float64   `json:"financial_goal"`
	Theme         string    `json:"theme"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toEventResponse(e *eventdomain.Event) eventResponse {
	return eventResponse{
		ID:            e.ID,
		CoupleName:    e.CoupleName,
		Date:          e.Date,
		City:          e.City,
		State:         e.State,
		CeremonyType:  e.CeremonyType,
		Currency:      e.Currency,
		FinancialGoal: e.FinancialGoal,
		Theme:         e.Theme,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// requireEvent pulls the caller's event out of the request context. Every
// planning route needs one; without it the caller gets a 404.
func requireEvent(w http.ResponseWriter, r *http.Request) (*eventdomain.Event, bool) {
	e, ok := middleware.EventFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusNotFound, "event_not_found", "event not found")
		return nil, false
	}
	return e, true
}

func (h *Handlers) CreateEvent(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}

	var req eventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	date, err := parseDateTimeParam(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid date")
		return
	}

	e, err := h.Events.Create(r.Context(), eventdomain.CreateInput{
		UserID:        user.ID,
		CoupleName:    req.CoupleName,
		Date:          date,
		City:          req.City,
		State:         req.State,
		CeremonyType:  req.CeremonyType,
		Currency:      req.Currency,
		FinancialGoal: req.FinancialGoal,
		Theme:         req.Theme,
	})
	if err != nil {
		if errors.Is(err, eventdomain.ErrEventExists) {
			h.log.BusinessError("event.create: event exists", err, "user_id", user.ID)
			writeError(w, http.StatusConflict, "event_exists", "event already exists")
			return
		}
		if errors.Is(err, eventdomain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		h.log.InternalError("event.create: create failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toEventResponse(e))
}

func (h *Handlers) GetEvent(w http.ResponseWriter, r *http.Request) {
	e, ok := middleware.EventFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusNotFound, "event_not_found", "event not found")
		return
	}

	writeJSON(w, http.StatusOK, toEventResponse(e))
}

func (h *Handlers) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}
	e, ok := middleware.EventFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusNotFound, "event_not_found", "event not found")
		return
	}

	var req eventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	date, err := parseDateTimeParam(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid date")
		return
	}

	updated, err := h.Events.Update(r.Context(), eventdomain.UpdateInput{
		ID:            e.ID,
		UserID:        user.ID,
		CoupleName:    req.CoupleName,
		Date:          date,
		City:          req.City,
		State:         req.State,
		CeremonyType:  req.CeremonyType,
		Currency:      req.Currency,
		FinancialGoal: req.FinancialGoal,
		Theme:         req.Theme,
	})
	if err != nil {
		if errors.Is(err, eventdomain.ErrEventNotFound) {
			h.log.BusinessError("event.update: event not found", err, "user_id", user.ID)
			writeError(w, http.StatusNotFound, "event_not_found", "event not found")
			return
		}
		if errors.Is(err, eventdomain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		h.log.InternalError("event.update: update failed", err, "user_id", user.ID, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toEventResponse(updated))
}
