package handler

import (
	"errors"
	"net/http"
	"time"

	documentsdomain "wedding-planner-go/internal/domain/documents"
	"github.com/go-chi/chi/v5"
)

type documentRequest struct {
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Link        *string `json:"link"`
	Notes       *string `json:"notes"`
}

type documentResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Link        *string   `json:"link"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type documentListResponse struct {
	Items []documentResponse `json:"items"`
	Total int                `json:"total"`
}

func toDocumentResponse(d documentsdomain.Document) documentResponse {
	return documentResponse{
		ID:          d.ID,
		Type:        d.Type,
		Title:       d.Title,
		Description: d.Description,
		Link:        d.Link,
		Notes:       d.Notes,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (h *Handlers) ListDocuments(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	items, err := h.Documents.List(r.Context(), e.ID)
	if err != nil {
		h.log.InternalError("documents.list: list failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]documentResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toDocumentResponse(item))
	}

	writeJSON(w, http.StatusOK, documentListResponse{Items: response, Total: len(response)})
}

func (h *Handlers) CreateDocument(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	var req documentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	d, err := h.Documents.Create(r.Context(), documentsdomain.CreateInput{
		EventID:     e.ID,
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
		Notes:       req.Notes,
	})
	if err != nil {
		if errors.Is(err, documentsdomain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		h.log.InternalError("documents.create: create failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toDocumentResponse(*d))
}

func (h *Handlers) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	var req documentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	d, err := h.Documents.Update(r.Context(), documentsdomain.UpdateInput{
		ID:          chi.URLParam(r, "id"),
		EventID:     e.ID,
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
		Notes:       req.Notes,
	})
	if err != nil {
		if errors.Is(err, documentsdomain.ErrDocumentNotFound) {
			h.log.BusinessError("documents.update: document not found", err, "event_id", e.ID)
			writeError(w, http.StatusNotFound, "document_not_found", "document not found")
			return
		}
		if errors.Is(err, documentsdomain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		h.log.InternalError("documents.update: update failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toDocumentResponse(*d))
}

func (h *Handlers) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	if err := h.Documents.Delete(r.Context(), e.ID, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, documentsdomain.ErrDocumentNotFound) {
			h.log.BusinessError("documents.delete: document not found", err, "event_id", e.ID)
			writeError(w, http.StatusNotFound, "document_not_found", "document not found")
			return
		}
		h.log.InternalError("documents.delete: delete failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
