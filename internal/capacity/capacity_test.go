package capacity

import (
	"testing"

	"github.com/stpnv0/SlotMatcher/internal/domain"
	"github.com/stretchr/testify/assert"
)

func slot(total, minCap, maxCap int) domain.Slot {
	return domain.Slot{TotalParticipants: total, MinCapacity: minCap, MaxCapacity: maxCap}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name string
		in   domain.Slot
		want float64
	}{
		{"quarter", slot(1, 4, 6), 25},
		{"half", slot(2, 4, 6), 50},
		{"exactly min", slot(4, 4, 6), 100},
		{"over max capped", slot(9, 4, 6), 100},
		{"zero min treated as satisfied", slot(0, 0, 6), 100},
		{"empty", slot(0, 4, 6), 0},
		{"negative total clamps", slot(-2, 4, 6), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Progress(tt.in), 0.0001)
		})
	}
}

func TestProgress_AlwaysWithinBounds(t *testing.T) {
	for total := -3; total <= 20; total++ {
		for minCap := 0; minCap <= 8; minCap++ {
			p := Progress(slot(total, minCap, minCap+2))
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 100.0)
		}
	}
}

func TestRemainingToMatch(t *testing.T) {
	assert.Equal(t, 3, RemainingToMatch(slot(1, 4, 6)))
	assert.Equal(t, 0, RemainingToMatch(slot(4, 4, 6)))
	assert.Equal(t, 0, RemainingToMatch(slot(7, 4, 6)))

	for total := 0; total <= 10; total++ {
		s := slot(total, 5, 8)
		r := RemainingToMatch(s)
		assert.GreaterOrEqual(t, r, 0)
		assert.Equal(t, r == 0, total >= 5)
	}
}

func TestIsFull(t *testing.T) {
	assert.False(t, IsFull(slot(5, 4, 6)))
	assert.True(t, IsFull(slot(6, 4, 6)))
	assert.True(t, IsFull(slot(8, 4, 6)))
}

func TestClassify(t *testing.T) {
	for total := 0; total <= 10; total++ {
		got := Classify(slot(total, 4, 6))
		if total >= 4 {
			assert.Equal(t, PhaseMatched, got, "total=%d", total)
		} else {
			assert.Equal(t, PhaseSearching, got, "total=%d", total)
		}
	}
}

func TestSnapshot_OverCapacityKeepsLiteralTotal(t *testing.T) {
	v := Snapshot(slot(9, 4, 6))

	assert.Equal(t, 9, v.TotalParticipants)
	assert.True(t, v.IsFull)
	assert.InDelta(t, 100.0, v.Progress, 0.0001)
	assert.Equal(t, PhaseMatched, v.Phase)
	assert.Zero(t, v.RemainingToMatch)
}

func TestScenarioB_CapacityBeforeAndAfterRefresh(t *testing.T) {
	s := slot(1, 4, 6)
	assert.Equal(t, PhaseSearching, Classify(s))
	assert.Equal(t, 3, RemainingToMatch(s))
	assert.InDelta(t, 25.0, Progress(s), 0.0001)

	s.TotalParticipants = 4
	assert.Equal(t, PhaseMatched, Classify(s))
}
