package handler

import (
	"errors"
	"net/http"
	"time"

	planningdomain "wedding-planner-go/internal/domain/planning"
	"github.com/go-chi/chi/v5"
)

type supplierRequest struct {
	Type          string  `json:"type"`
	Name          string  `json:"name"`
	ContactName   *string `json:"contact_name"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	AgreedValue   float64 `json:"agreed_value"`
	PaymentStatus string  `json:"payment_status"`
	Notes         *string `json:"notes"`
}

type supplierResponse struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Name          string    `json:"name"`
	ContactName   *string   `json:"contact_name"`
	Phone         *string   `json:"phone"`
	Email         *string   `json:"email"`
	AgreedValue   float64   `json:"agreed_value"`
	PaymentStatus string    `json:"payment_status"`
	Notes         *string   `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type supplierListResponse struct {
	Items []supplierResponse `json:"items"`
	Total int                `json:"total"`
}

type locationRequest struct {
	Kind     string  `json:"kind"`
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	Time     string  `json:"time"`
	MapsLink *string `json:"maps_link"`
}

type locationResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Time      string    `json:"time"`
	MapsLink  *string   `json:"maps_link"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type locationListResponse struct {
	Items []locationResponse `json:"items"`
	Total int                `json:"total"`
}

func toSupplierResponse(s planningdomain.Supplier) supplierResponse {
	return supplierResponse{
		ID:            s.ID,
		Type:          s.Type,
		Name:          s.Name,
		ContactName:   s.ContactName,
		Phone:         s.Phone,
		Email:         s.Email,
		AgreedValue:   s.AgreedValue,
		PaymentStatus: string(s.PaymentStatus),
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func toLocationResponse(l planningdomain.Location) locationResponse {
	return locationResponse{
		ID:        l.ID,
		Kind:      string(l.Kind),
		Name:      l.Name,
		Address:   l.Address,
		Time:      l.Time,
		MapsLink:  l.MapsLink,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func (h *Handlers) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	items, err := h.Planning.ListSuppliers(r.Context(), e.ID)
	if err != nil {
		h.log.InternalError("planning.suppliers.list: list failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]supplierResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toSupplierResponse(item))
	}

	writeJSON(w, http.StatusOK, supplierListResponse{Items: response, Total: len(response)})
}

func (h *Handlers) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	var req supplierRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	s, err := h.Planning.CreateSupplier(r.Context(), planningdomain.CreateSupplierInput{
		EventID:       e.ID,
		Type:          req.Type,
		Name:          req.Name,
		ContactName:   req.ContactName,
		Phone:         req.Phone,
		Email:         req.Email,
		AgreedValue:   req.AgreedValue,
		PaymentStatus: planningdomain.PaymentStatus(req.PaymentStatus),
		Notes:         req.Notes,
	})
	if err != nil {
		if errors.Is(err, planningdomain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		h.log.InternalError("planning.suppliers.create: create failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toSupplierResponse(*s))
}

func (h *Handlers) UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	var req supplierRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	s, err := h.Planning.UpdateSupplier(r.Context(), planningdomain.UpdateSupplierInput{
		ID:            chi.URLParam(r, "id"),
		EventID:       e.ID,
		Type:          req.Type,
		Name:          req.Name,
		ContactName:   req.ContactName,
		Phone:         req.Phone,
		Email:         req.Email,
		AgreedValue:   req.AgreedValue,
		PaymentStatus: planningdomain.PaymentStatus(req.PaymentStatus),
		Notes:         req.Notes,
	})
	if err != nil {
		if errors.Is(err, planningdomain.ErrSupplierNotFound) {
			h.log.BusinessError("planning.suppliers.update: supplier not found", err, "event_id", e.ID)
			writeError(w, http.StatusNotFound, "supplier_not_found", "supplier not found")
			return
		}
		if errors.Is(err, planningdomain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		h.log.InternalError("planning.suppliers.update: update failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toSupplierResponse(*s))
}

func (h *Handlers) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	if err := h.Planning.DeleteSupplier(r.Context(), e.ID, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, planningdomain.ErrSupplierNotFound) {
			h.log.BusinessError("planning.suppliers.delete: supplier not found", err, "event_id", e.ID)
			writeError(w, http.StatusNotFound, "supplier_not_found", "supplier not found")
			return
		}
		h.log.InternalError("planning.suppliers.delete: delete failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListLocations(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	items, err := h.Planning.ListLocations(r.Context(), e.ID)
	if err != nil {
		h.log.InternalError("planning.locations.list: list failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]locationResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toLocationResponse(item))
	}

	writeJSON(w, http.StatusOK, locationListResponse{Items: response, Total: len(response)})
}

// UpsertLocation saves the venue for a kind, replacing the previous one.
// An event holds at most one ceremony venue and one reception venue.
func (h *Handlers) UpsertLocation(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	var req locationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	l, err := h.Planning.UpsertLocation(r.Context(), planningdomain.UpsertLocationInput{
		EventID:  e.ID,
		Kind:     planningdomain.LocationKind(req.Kind),
		Name:     req.Name,
		Address:  req.Address,
		Time:     req.Time,
		MapsLink: req.MapsLink,
	})
	if err != nil {
		if errors.Is(err, planningdomain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		h.log.InternalError("planning.locations.upsert: upsert failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toLocationResponse(*l))
}

func (h *Handlers) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	if err := h.Planning.DeleteLocation(r.Context(), e.ID, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, planningdomain.ErrLocationNotFound) {
			h.log.BusinessError("planning.locations.delete: location not found", err, "event_id", e.ID)
			writeError(w, http.StatusNotFound, "location_not_found", "location not found")
			return
		}
		h.log.InternalError("planning.locations.delete: delete failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
