package countdown

import (
	"sync"
	"time"
)

const defaultInterval = time.Second

// Ticker recomputes the countdown on a fixed interval and publishes each
// snapshot to its subscriber. The counting-to-arrived transition is one-way
// for a fixed target; the ticker keeps publishing the arrived state until
// stopped.
type Ticker struct {
	target   time.Time
	interval time.Duration
	now      func() time.Time

	ch       chan Snapshot
	stop     chan struct{}
	stopOnce sync.Once
	started  bool
	mu       sync.Mutex
}

type Option func(*Ticker)

func WithInterval(interval time.Duration) Option {
	return func(t *Ticker) {
		if interval > 0 {
			t.interval = interval
		}
	}
}

// WithClock overrides the time source, used in tests.
func WithClock(now func() time.Time) Option {
	return func(t *Ticker) {
		t.now = now
	}
}

func NewTicker(target time.Time, opts ...Option) *Ticker {
	t := &Ticker{
		target:   target,
		interval: defaultInterval,
		now:      time.Now,
		ch:       make(chan Snapshot, 1),
		stop:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Subscribe starts the periodic recomputation and returns the snapshot
// channel. The first snapshot is published immediately. A slow consumer
// never blocks the ticker; stale snapshots are replaced by newer ones.
func (t *Ticker) Subscribe() <-chan Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started {
		return t.ch
	}
	t.started = true

	go t.run()
	return t.ch
}

// Stop ends publication and closes the snapshot channel. Safe to call more
// than once.
func (t *Ticker) Stop() {
	t.stopOnce.Do(func() {
		close(t.stop)
	})
}

func (t *Ticker) run() {
	defer close(t.ch)

	current, state := Remaining(t.target, t.now())
	t.publish(Snapshot{State: state, Current: current, Previous: current, Target: t.target})

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	previous := current
	for {
		select {
		case <-t.stop:
			return
		case <-ticker.C:
			current, state = Remaining(t.target, t.now())
			t.publish(Snapshot{State: state, Current: current, Previous: previous, Target: t.target})
			previous = current
		}
	}
}

func (t *Ticker) publish(snapshot Snapshot) {
	select {
	case t.ch <- snapshot:
	default:
		select {
		case <-t.ch:
		default:
		}
		select {
		case t.ch <- snapshot:
		default:
		}
	}
}
