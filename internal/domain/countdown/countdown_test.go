package countdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemainingBreakdown(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	// 90061s is one day, one hour, one minute and one second.
	breakdown, state := Remaining(now.Add(90061*time.Second), now)
	assert.Equal(t, StateCounting, state)
	assert.Equal(t, Breakdown{Days: 1, Hours: 1, Minutes: 1, Seconds: 1}, breakdown)

	breakdown, state = Remaining(now.Add(59*time.Second), now)
	assert.Equal(t, StateCounting, state)
	assert.Equal(t, Breakdown{Seconds: 59}, breakdown)
}

func TestRemainingArrived(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	breakdown, state := Remaining(now, now)
	assert.Equal(t, StateArrived, state)
	assert.Equal(t, Breakdown{}, breakdown)

	breakdown, state = Remaining(now.Add(-5*time.Second), now)
	assert.Equal(t, StateArrived, state)
	assert.Equal(t, Breakdown{}, breakdown)
}

func TestTickerPublishesImmediatelyAndTracksPrevious(t *testing.T) {
	current := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	target := current.Add(10 * time.Second)

	now := func() time.Time { return current }
	ticker := NewTicker(target, WithInterval(time.Millisecond), WithClock(now))
	defer ticker.Stop()

	ch := ticker.Subscribe()

	first, ok := <-ch
	require.True(t, ok)
	assert.Equal(t, StateCounting, first.State)
	assert.Equal(t, Breakdown{Seconds: 10}, first.Current)
	assert.Equal(t, first.Current, first.Previous)
	assert.Equal(t, target, first.Target)
}

func TestTickerReportsArrivalOnce(t *testing.T) {
	target := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	now := func() time.Time { return target.Add(time.Second) }

	ticker := NewTicker(target, WithInterval(time.Millisecond), WithClock(now))
	defer ticker.Stop()

	snapshot := <-ticker.Subscribe()
	assert.Equal(t, StateArrived, snapshot.State)
	assert.Equal(t, Breakdown{}, snapshot.Current)
}

func TestTickerStopClosesChannel(t *testing.T) {
	ticker := NewTicker(time.Now().Add(time.Hour), WithInterval(time.Millisecond))
	ch := ticker.Subscribe()

	<-ch
	ticker.Stop()
	ticker.Stop()

	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel not closed after Stop")
		}
	}
}

func TestSubscribeTwiceReturnsSameChannel(t *testing.T) {
	ticker := NewTicker(time.Now().Add(time.Hour), WithInterval(time.Millisecond))
	defer ticker.Stop()

	first := ticker.Subscribe()
	second := ticker.Subscribe()
	assert.Equal(t, first, second)
}
