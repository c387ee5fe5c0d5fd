// Package countdown decomposes the time left until a target instant into
// calendar-friendly units for the dashboard banner.
package countdown

import "time"

type State string

const (
	StateCounting State = "counting"
	StateArrived  State = "arrived"
)

// Breakdown is a non-negative decomposition of remaining time: whole days,
// then the leftover hours, minutes and seconds.
type Breakdown struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// Snapshot carries the current breakdown together with the one published
// just before it, so a consumer can animate each unit transition.
type Snapshot struct {
	State    State     `json:"state"`
	Current  Breakdown `json:"current"`
	Previous Breakdown `json:"previous"`
	Target   time.Time `json:"target"`
}

// Remaining computes the breakdown for a target relative to now. A target
// at or before now reports the arrived state with zeroed units.
func Remaining(target, now time.Time) (Breakdown, State) {
	total := target.Sub(now)
	if total <= 0 {
		return Breakdown{}, StateArrived
	}

	seconds := int(total.Seconds())
	return Breakdown{
		Days:    seconds / 86400,
		Hours:   seconds / 3600 % 24,
		Minutes: seconds / 60 % 60,
		Seconds: seconds % 60,
	}, StateCounting
}
