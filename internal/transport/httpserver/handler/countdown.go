package handler

import (
	"net/http"
	"time"

	countdowndomain "wedding-planner-go/internal/domain/countdown"
)

type countdownResponse struct {
	State     string                    `json:"state"`
	Target    time.Time                 `json:"target"`
	Remaining countdowndomain.Breakdown `json:"remaining"`
}

// Countdown reports the time left until the event as whole days, hours,
// minutes and seconds. Clients that want a live banner poll or run their
// own ticker against the target instant.
func (h *Handlers) Countdown(w http.ResponseWriter, r *http.Request) {
	e, ok := requireEvent(w, r)
	if !ok {
		return
	}

	breakdown, state := countdowndomain.Remaining(e.Date, time.Now())
	writeJSON(w, http.StatusOK, countdownResponse{
		State:     string(state),
		Target:    e.Date,
		Remaining: breakdown,
	})
}
