package handler

import (
	"errors"
	"net/http"
	"time"

	tasksdomain "wedding-planner-go/internal/domain/tasks"
	"github.com/go-chi/chi/v5"
)

type taskRequest struct {
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
	Stage       string `json:"stage"`
	Responsible string `json:"responsible"`
	Priority    string `json:"priority"`
	Completed   bool   `json:"completed"`
}

type setTaskCompletedRequest struct {
	Completed bool `json:"completed"`
}

type taskResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Deadline    time.Time `json:"deadline"`
	Stage       string    `json:"stage"`
	Responsible string    `json:"responsible"`
	Priority    string    `json:"priority"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type taskListResponse struct {
	Items []taskResponse `json:"items"`
	Total int            `json:"total"`
}

func toTaskResponse(t tasksdomain.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		Description: t.Description,
		Deadline:    t.Deadline,
		Stage:       string(t.Stage),
		Responsible: string(t.Responsible),
		Priority:    string(t.Priority),
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (h *Handlers) ListTasks(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	items, err := h.Tasks.List(r.Context(), e.ID)
	if err != nil {
		h.log.InternalError("tasks.list: list failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]taskResponse, 0, len(items))
	for _, t := range items {
		response = append(response, toTaskResponse(t))
	}

	writeJSON(w, http.StatusOK, taskListResponse{Items: response, Total: len(response)})
}

func (h *Handlers) CreateTask(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	var req taskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	deadline, err := parseDateRequired(req.Deadline)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid deadline")
		return
	}

	t, err := h.Tasks.Create(r.Context(), tasksdomain.CreateInput{
		EventID:     e.ID,
		Description: req.Description,
		Deadline:    deadline,
		Stage:       tasksdomain.Stage(req.Stage),
		Responsible: tasksdomain.Responsible(req.Responsible),
		Priority:    tasksdomain.Priority(req.Priority),
	})
	if err != nil {
		if errors.Is(err, tasksdomain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		h.log.InternalError("tasks.create: create failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toTaskResponse(*t))
}

func (h *Handlers) UpdateTask(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	var req taskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	deadline, err := parseDateRequired(req.Deadline)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid deadline")
		return
	}

	t, err := h.Tasks.Update(r.Context(), tasksdomain.UpdateInput{
		ID:          chi.URLParam(r, "id"),
		EventID:     e.ID,
		Description: req.Description,
		Deadline:    deadline,
		Stage:       tasksdomain.Stage(req.Stage),
		Responsible: tasksdomain.Responsible(req.Responsible),
		Priority:    tasksdomain.Priority(req.Priority),
		Completed:   req.Completed,
	})
	if err != nil {
		if errors.Is(err, tasksdomain.ErrTaskNotFound) {
			h.log.BusinessError("tasks.update: task not found", err, "event_id", e.ID)
			writeError(w, http.StatusNotFound, "task_not_found", "task not found")
			return
		}
		if errors.Is(err, tasksdomain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		h.log.InternalError("tasks.update: update failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(*t))
}

func (h *Handlers) SetTaskCompleted(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	var req setTaskCompletedRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	t, err := h.Tasks.SetCompleted(r.Context(), e.ID, chi.URLParam(r, "id"), req.Completed)
	if err != nil {
		if errors.Is(err, tasksdomain.ErrTaskNotFound) {
			h.log.BusinessError("tasks.complete: task not found", err, "event_id", e.ID)
			writeError(w, http.StatusNotFound, "task_not_found", "task not found")
			return
		}
		h.log.InternalError("tasks.complete: update failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(*t))
}

func (h *Handlers) DeleteTask(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	if err := h.Tasks.Delete(r.Context(), e.ID, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, tasksdomain.ErrTaskNotFound) {
			h.log.BusinessError("tasks.delete: task not found", err, "event_id", e.ID)
			writeError(w, http.StatusNotFound, "task_not_found", "task not found")
			return
		}
		h.log.InternalError("tasks.delete: delete failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
