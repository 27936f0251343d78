package lifecycle

import (
	"sync"
	"time"

	"github.com/stpnv0/SlotMatcher/internal/domain"
)

const DefaultFoundDwell = 3 * time.Second

// Listener is called after every phase change, outside the tracker lock.
type Listener func(from, to Phase)

type TrackerOption func(*Tracker)

func WithListener(l Listener) TrackerOption {
	return func(t *Tracker) { t.listener = l }
}

// Tracker owns one machine instance and its found → matched timer.
// Stop must be called when the owning view goes away.
type Tracker struct {
	mu       sync.Mutex
	phase    Phase
	dwell    time.Duration
	timer    *time.Timer
	stopped  bool
	listener Listener
}

func NewTracker(dwell time.Duration, opts ...TrackerOption) *Tracker {
	if dwell <= 0 {
		dwell = DefaultFoundDwell
	}

	t := &Tracker{
		phase: PhaseSearching,
		dwell: dwell,
	}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

func (t *Tracker) Phase() Phase {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.phase
}

// Observe feeds the latest slot into the machine and returns the resulting phase.
func (t *Tracker) Observe(slot domain.Slot) Phase {
	t.mu.Lock()
	if t.stopped {
		phase := t.phase
		t.mu.Unlock()
		return phase
	}

	prev := t.phase
	next := Reduce(prev, slot)
	t.phase = next
	if prev == PhaseSearching && next == PhaseFound {
		t.timer = time.AfterFunc(t.dwell, t.settle)
	}
	t.mu.Unlock()

	if prev != next {
		t.notify(prev, next)
	}
	return next
}

func (t *Tracker) settle() {
	t.mu.Lock()
	if t.stopped || t.phase != PhaseFound {
		t.mu.Unlock()
		return
	}
	t.phase = PhaseMatched
	t.timer = nil
	t.mu.Unlock()

	t.notify(PhaseFound, PhaseMatched)
}

// Stop cancels a pending dwell timer; the tracker ignores everything afterwards.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

func (t *Tracker) notify(from, to Phase) {
	if t.listener != nil {
		t.listener(from, to)
	}
}
