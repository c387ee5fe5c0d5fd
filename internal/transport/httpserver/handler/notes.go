package handler

import (
	"errors"
	"net/http"
	"time"

	notesdomain "wedding-planner-go/internal/domain/notes"
	"github.com/go-chi/chi/v5"
)

type noteRequest struct {
	Title   *string `json:"title"`
	Content string  `json:"content"`
	Type    string  `json:"type"`
}

type noteResponse struct {
	ID        string    `json:"id"`
	Title     *string   `json:"title"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type noteListResponse struct {
	Items []noteResponse `json:"items"`
	Total int            `json:"total"`
}

func toNoteResponse(n notesdomain.Note) noteResponse {
	return noteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Type:      string(n.Type),
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func (h *Handlers) ListNotes(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	items, err := h.Notes.List(r.Context(), e.ID)
	if err != nil {
		h.log.InternalError("notes.list: list failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]noteResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toNoteResponse(item))
	}

	writeJSON(w, http.StatusOK, noteListResponse{Items: response, Total: len(response)})
}

func (h *Handlers) CreateNote(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	var req noteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	n, err := h.Notes.Create(r.Context(), notesdomain.CreateInput{
		EventID: e.ID,
		Title:   req.Title,
		Content: req.Content,
		Type:    notesdomain.Type(req.Type),
	})
	if err != nil {
		if errors.Is(err, notesdomain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		h.log.InternalError("notes.create: create failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toNoteResponse(*n))
}

func (h *Handlers) UpdateNote(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	var req noteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	n, err := h.Notes.Update(r.Context(), notesdomain.UpdateInput{
		ID:      chi.URLParam(r, "id"),
		EventID: e.ID,
		Title:   req.Title,
		Content: req.Content,
		Type:    notesdomain.Type(req.Type),
	})
	if err != nil {
		if errors.Is(err, notesdomain.ErrNoteNotFound) {
			h.log.BusinessError("notes.update: note not found", err, "event_id", e.ID)
			writeError(w, http.StatusNotFound, "note_not_found", "note not found")
			return
		}
		if errors.Is(err, notesdomain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		h.log.InternalError("notes.update: update failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toNoteResponse(*n))
}

func (h *Handlers) DeleteNote(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	if err := h.Notes.Delete(r.Context(), e.ID, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, notesdomain.ErrNoteNotFound) {
			h.log.BusinessError("notes.delete: note not found", err, "event_id", e.ID)
			writeError(w, http.StatusNotFound, "note_not_found", "note not found")
			return
		}
		h.log.InternalError("notes.delete: delete failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
