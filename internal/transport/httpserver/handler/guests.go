package handler

import (
	"errors"
	"net/http"
	"time"

	guestsdomain "wedding-planner-go/internal/domain/guests"
	"github.com/go-chi/chi/v5"
)

type guestRequest struct {
	Name          string  `json:"name"`
	Companions    int     `json:"companions"`
	Phone         *string `json:"phone"`
	AltContact    *string `json:"alt_contact"`
	Status        string  `json:"status"`
	Family        *string `json:"family"`
	IsGodparent   bool    `json:"is_godparent"`
	GodparentRole *string `json:"godparent_role"`
}

type guestResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Companions    int       `json:"companions"`
	Headcount     int       `json:"headcount"`
	Phone         *string   `json:"phone"`
	AltContact    *string   `json:"alt_contact"`
	Status        string    `json:"status"`
	Family        *string   `json:"family"`
	IsGodparent   bool      `json:"is_godparent"`
	GodparentRole *string   `json:"godparent_role"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type guestListResponse struct {
	Items []guestResponse `json:"items"`
	Total int             `json:"total"`
}

func toGuestResponse(g guestsdomain.Guest) guestResponse {
	var role *string
	if g.GodparentRole != nil {
		value := string(*g.GodparentRole)
		role = &value
	}
	return guestResponse{
		ID:            g.ID,
		Name:          g.Name,
		Companions:    g.Companions,
		Headcount:     g.Headcount(),
		Phone:         g.Phone,
		AltContact:    g.AltContact,
		Status:        string(g.Status),
		Family:        g.Family,
		IsGodparent:   g.IsGodparent,
		GodparentRole: role,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

func guestInputFromRequest(req guestRequest) (status guestsdomain.Status, role *guestsdomain.GodparentRole) {
	status = guestsdomain.Status(req.Status)
	if req.GodparentRole != nil {
		value := guestsdomain.GodparentRole(*req.GodparentRole)
		role = &value
	}
	return status, role
}

func (h *Handlers) ListGuests(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	items, err := h.Guests.List(r.Context(), e.ID)
	if err != nil {
		h.log.InternalError("guests.list: list failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]guestResponse, 0, len(items))
	for _, g := range items {
		response = append(response, toGuestResponse(g))
	}

	writeJSON(w, http.StatusOK, guestListResponse{Items: response, Total: len(response)})
}

func (h *Handlers) CreateGuest(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	var req guestRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	status, role := guestInputFromRequest(req)
	g, err := h.Guests.Create(r.Context(), guestsdomain.CreateInput{
		EventID:       e.ID,
		Name:          req.Name,
		Companions:    req.Companions,
		Phone:         req.Phone,
		AltContact:    req.AltContact,
		Status:        status,
		Family:        req.Family,
		IsGodparent:   req.IsGodparent,
		GodparentRole: role,
	})
	if err != nil {
		if errors.Is(err, guestsdomain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		h.log.InternalError("guests.create: create failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toGuestResponse(*g))
}

func (h *Handlers) UpdateGuest(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	var req guestRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	status, role := guestInputFromRequest(req)
	g, err := h.Guests.Update(r.Context(), guestsdomain.UpdateInput{
		ID:            chi.URLParam(r, "id"),
		EventID:       e.ID,
		Name:          req.Name,
		Companions:    req.Companions,
		Phone:         req.Phone,
		AltContact:    req.AltContact,
		Status:        status,
		Family:        req.Family,
		IsGodparent:   req.IsGodparent,
		GodparentRole: role,
	})
	if err != nil {
		if errors.Is(err, guestsdomain.ErrGuestNotFound) {
			h.log.BusinessError("guests.update: guest not found", err, "event_id", e.ID)
			writeError(w, http.StatusNotFound, "guest_not_found", "guest not found")
			return
		}
		if errors.Is(err, guestsdomain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		h.log.InternalError("guests.update: update failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toGuestResponse(*g))
}

func (h *Handlers) DeleteGuest(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	if err := h.Guests.Delete(r.Context(), e.ID, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, guestsdomain.ErrGuestNotFound) {
			h.log.BusinessError("guests.delete: guest not found", err, "event_id", e.ID)
			writeError(w, http.StatusNotFound, "guest_not_found", "guest not found")
			return
		}
		h.log.InternalError("guests.delete: delete failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type familyGroupResponse struct {
	Family     string          `json:"family"`
	Unassigned bool            `json:"unassigned"`
	Headcount  int             `json:"headcount"`
	Guests     []guestResponse `json:"guests"`
}

type familyGroupListResponse struct {
	Items []familyGroupResponse `json:"items"`
	Total int                   `json:"total"`
}

// GuestFamilies returns the guest list partitioned by family label,
// alphabetical with the unlabeled group last.
func (h *Handlers) GuestFamilies(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	groups, err := h.Metrics.FamilyGroups(r.Context(), e.ID)
	if err != nil {
		h.log.InternalError("guests.families: grouping failed", err, "event_id", e.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]familyGroupResponse, 0, len(groups))
	for _, group := range groups {
		members := make([]guestResponse, 0, len(group.Guests))
		for _, g := range group.Guests {
			members = append(members, toGuestResponse(g))
		}
		response = append(response, familyGroupResponse{
			Family:     group.Family,
			Unassigned: group.Unassigned,
			Headcount:  group.Headcount,
			Guests:     members,
		})
	}

	writeJSON(w, http.StatusOK, familyGroupListResponse{Items: response, Total: len(response)})
}
