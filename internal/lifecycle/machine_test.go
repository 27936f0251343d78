package lifecycle

import (
	"testing"

	"github.com/stpnv0/SlotMatcher/internal/domain"
	"github.com/stretchr/testify/assert"
)

func slotWith(total, minCap int) domain.Slot {
	return domain.Slot{TotalParticipants: total, MinCapacity: minCap, MaxCapacity: minCap + 2}
}

func TestReduce_SearchingStaysUntilThreshold(t *testing.T) {
	assert.Equal(t, PhaseSearching, Reduce(PhaseSearching, slotWith(1, 4)))
	assert.Equal(t, PhaseSearching, Reduce(PhaseSearching, slotWith(3, 4)))
	assert.Equal(t, PhaseFound, Reduce(PhaseSearching, slotWith(4, 4)))
}

func TestReduce_EmptyPhaseStartsAsSearching(t *testing.T) {
	assert.Equal(t, PhaseSearching, Reduce("", slotWith(0, 4)))
	assert.Equal(t, PhaseFound, Reduce("", slotWith(5, 4)))
}

func TestReduce_FoundWaitsForTimer(t *testing.T) {
	assert.Equal(t, PhaseFound, Reduce(PhaseFound, slotWith(9, 4)))
	assert.Equal(t, PhaseFound, Reduce(PhaseFound, slotWith(0, 4)))
}

func TestReduce_MatchedNeverRegresses(t *testing.T) {
	inputs := []domain.Slot{
		slotWith(0, 4),
		slotWith(3, 4),
		slotWith(4, 4),
		slotWith(100, 4),
		{},
	}
	for _, in := range inputs {
		assert.Equal(t, PhaseMatched, Reduce(PhaseMatched, in))
	}
}
