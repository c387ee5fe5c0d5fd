package handler

import (
	"errors"
	"net/http"
	"time"

	registrydomain "wedding-planner-go/internal/domain/registry"
	"github.com/go-chi/chi/v5"
)

type registryItemRequest struct {
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	EstimatedPrice *float64 `json:"estimated_price"`
	Store          *string  `json:"store"`
	Link           *string  `json:"link"`
	Status         string   `json:"status"`
}

type setRegistryStatusRequest struct {
	Status string `json:"status"`
}

type registryItemResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	EstimatedPrice *float64  `json:"estimated_price"`
	Store          *string   `json:"store"`
	Link           *string   `json:"link"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type registryListResponse struct {
	Items []registryItemResponse `json:"items"`
	Total int                    `json:"total"`
}

func toRegistryItemResponse(item registrydomain.Item) registryItemResponse {
	return registryItemResponse{
		ID:             item.ID,
		Name:           item.Name,
		Category:       item.Category,
		EstimatedPrice: item.EstimatedPrice,
		Store:          item.Store,
		Link:           item.Link,
		Status:         string(item.Status),
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
	}
}

func (h *Handlers) ListRegistryItems(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	items, err := h.Registry.List(r.Context(), e.ID)
	if err != nil {
		h.log.InternalError("registry.list: list failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]registryItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toRegistryItemResponse(item))
	}

	writeJSON(w, http.StatusOK, registryListResponse{Items: response, Total: len(response)})
}

func (h *Handlers) CreateRegistryItem(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	var req registryItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	item, err := h.Registry.Create(r.Context(), registrydomain.CreateInput{
		EventID:        e.ID,
		Name:           req.Name,
		Category:       req.Category,
		EstimatedPrice: req.EstimatedPrice,
		Store:          req.Store,
		Link:           req.Link,
		Status:         registrydomain.Status(req.Status),
	})
	if err != nil {
		if errors.Is(err, registrydomain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		h.log.InternalError("registry.create: create failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toRegistryItemResponse(*item))
}

func (h *Handlers) UpdateRegistryItem(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	var req registryItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	item, err := h.Registry.Update(r.Context(), registrydomain.UpdateInput{
		ID:             chi.URLParam(r, "id"),
		EventID:        e.ID,
		Name:           req.Name,
		Category:       req.Category,
		EstimatedPrice: req.EstimatedPrice,
		Store:          req.Store,
		Link:           req.Link,
		Status:         registrydomain.Status(req.Status),
	})
	if err != nil {
		if errors.Is(err, registrydomain.ErrItemNotFound) {
			h.log.BusinessError("registry.update: item not found", err, "event_id", e.ID)
			writeError(w, http.StatusNotFound, "registry_item_not_found", "registry item not found")
			return
		}
		if errors.Is(err, registrydomain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		h.log.InternalError("registry.update: update failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toRegistryItemResponse(*item))
}

func (h *Handlers) SetRegistryItemStatus(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	var req setRegistryStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	item, err := h.Registry.SetStatus(r.Context(), e.ID, chi.URLParam(r, "id"), registrydomain.Status(req.Status))
	if err != nil {
		if errors.Is(err, registrydomain.ErrItemNotFound) {
			h.log.BusinessError("registry.status: item not found", err, "event_id", e.ID)
			writeError(w, http.StatusNotFound, "registry_item_not_found", "registry item not found")
			return
		}
		if errors.Is(err, registrydomain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		h.log.InternalError("registry.status: update failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toRegistryItemResponse(*item))
}

func (h *Handlers) DeleteRegistryItem(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	if err := h.Registry.Delete(r.Context(), e.ID, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, registrydomain.ErrItemNotFound) {
			h.log.BusinessError("registry.delete: item not found", err, "event_id", e.ID)
			writeError(w, http.StatusNotFound, "registry_item_not_found", "registry item not found")
			return
		}
		h.log.InternalError("registry.delete: delete failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
