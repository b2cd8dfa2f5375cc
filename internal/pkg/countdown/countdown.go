package countdown

import (
	"sync"
	"time"
)

// DefaultDuration is the resend window on the verification screen
const DefaultDuration = 60 * time.Second

const tickInterval = time.Second

// Stopper cancels a scheduled callback
type Stopper interface {
	Stop() bool
}

// Clock schedules callbacks. The real clock is time.AfterFunc.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Stopper
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Stopper {
	return time.AfterFunc(d, f)
}

// Option customizes a Timer
type Option func(*Timer)

// WithClock replaces the wall clock
func WithClock(c Clock) Option {
	return func(t *Timer) {
		t.clock = c
	}
}

// WithOnTick registers an observer called with the remaining seconds after every
// change. It runs outside the timer's lock.
func WithOnTick(f func(remaining int)) Option {
	return func(t *Timer) {
		t.onTick = f
	}
}

// Timer counts whole seconds down to zero. Each Start begins a new run; a tick
// scheduled by an earlier run never touches the current one.
type Timer struct {
	mu        sync.Mutex
	clock     Clock
	onTick    func(int)
	remaining int
	run       uint64
	pending   Stopper
}

// New creates a stopped timer at zero
func New(opts ...Option) *Timer {
	t := &Timer{clock: realClock{}}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start (re)arms the timer at d, truncated to whole seconds
func (t *Timer) Start(d time.Duration) {
	t.mu.Lock()
	t.cancelLocked()
	t.remaining = int(d / time.Second)
	if t.remaining < 0 {
		t.remaining = 0
	}
	if t.remaining > 0 {
		t.scheduleLocked(t.run)
	}
	remaining, cb := t.remaining, t.onTick
	t.mu.Unlock()

	if cb != nil {
		cb(remaining)
	}
}

// Stop cancels the pending tick. Remaining keeps its current value.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelLocked()
}

// Remaining returns the seconds left, never negative
func (t *Timer) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

// Running reports whether a tick is scheduled
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending != nil
}

func (t *Timer) cancelLocked() {
	t.run++
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
}

func (t *Timer) scheduleLocked(run uint64) {
	t.pending = t.clock.AfterFunc(tickInterval, func() {
		t.tick(run)
	})
}

func (t *Timer) tick(run uint64) {
	t.mu.Lock()
	if run != t.run {
		// stale callback from a restarted or stopped run
		t.mu.Unlock()
		return
	}

	if t.remaining > 0 {
		t.remaining--
	}
	if t.remaining > 0 {
		t.scheduleLocked(run)
	} else {
		t.pending = nil
	}
	remaining, cb := t.remaining, t.onTick
	t.mu.Unlock()

	if cb != nil {
		cb(remaining)
	}
}
