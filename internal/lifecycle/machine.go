// Package lifecycle drives the searching → found → matched presentation phases of a slot.
package lifecycle

import (
	"github.com/stpnv0/SlotMatcher/internal/capacity"
	"github.com/stpnv0/SlotMatcher/internal/domain"
)

type Phase string

const (
	PhaseSearching Phase = "searching"
	PhaseFound     Phase = "found"
	PhaseMatched   Phase = "matched"
)

// Reduce computes the next phase from the previous one and the latest slot.
// found only advances through the dwell timer; matched never regresses.
func Reduce(prev Phase, slot domain.Slot) Phase {
	switch prev {
	case PhaseMatched:
		return PhaseMatched
	case PhaseFound:
		return PhaseFound
	default:
		if capacity.Classify(slot) == capacity.PhaseMatched {
			return PhaseFound
		}
		return PhaseSearching
	}
}
