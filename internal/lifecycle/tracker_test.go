package lifecycle

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transitions struct {
	mu  sync.Mutex
	seq []Phase
}

func (r *transitions) record(_, to Phase) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq = append(r.seq, to)
}

func (r *transitions) get() []Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Phase(nil), r.seq...)
}

func TestTracker_ScenarioB_SearchingFoundMatched(t *testing.T) {
	rec := &transitions{}
	tr := NewTracker(30*time.Millisecond, WithListener(rec.record))
	defer tr.Stop()

	assert.Equal(t, PhaseSearching, tr.Observe(slotWith(1, 4)))
	assert.Equal(t, PhaseFound, tr.Observe(slotWith(4, 4)))

	require.Eventually(t, func() bool { return tr.Phase() == PhaseMatched },
		time.Second, 5*time.Millisecond)
	assert.Equal(t, []Phase{PhaseFound, PhaseMatched}, rec.get())
}

func TestTracker_FoundDoesNotRevertOnStaleRefresh(t *testing.T) {
	tr := NewTracker(time.Hour)
	defer tr.Stop()

	tr.Observe(slotWith(4, 4))
	assert.Equal(t, PhaseFound, tr.Observe(slotWith(1, 4)))
}

func TestTracker_MatchedIgnoresLaterRefreshes(t *testing.T) {
	tr := NewTracker(10 * time.Millisecond)
	defer tr.Stop()

	tr.Observe(slotWith(5, 4))
	require.Eventually(t, func() bool { return tr.Phase() == PhaseMatched },
		time.Second, 5*time.Millisecond)

	assert.Equal(t, PhaseMatched, tr.Observe(slotWith(0, 4)))
	assert.Equal(t, PhaseMatched, tr.Phase())
}

func TestTracker_StopCancelsDwell(t *testing.T) {
	rec := &transitions{}
	tr := NewTracker(40*time.Millisecond, WithListener(rec.record))

	tr.Observe(slotWith(4, 4))
	tr.Stop()

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, PhaseFound, tr.Phase())
	assert.Equal(t, []Phase{PhaseFound}, rec.get())
}

func TestTracker_ObserveAfterStopIsNoop(t *testing.T) {
	tr := NewTracker(time.Second)
	tr.Stop()

	assert.Equal(t, PhaseSearching, tr.Observe(slotWith(10, 4)))
}

func TestTracker_DefaultDwell(t *testing.T) {
	tr := NewTracker(0)
	assert.Equal(t, DefaultFoundDwell, tr.dwell)
}
