// Package capacity holds the pure arithmetic over a slot's participant counts.
package capacity

import "github.com/stpnv0/SlotMatcher/internal/domain"

type Phase string

const (
	PhaseSearching Phase = "searching"
	PhaseMatched   Phase = "matched"
)

// Progress returns how close the slot is to its minimum capacity, in percent.
// The value is capped at 100 for display; TotalParticipants itself is never clamped.
func Progress(s domain.Slot) float64 {
	if s.MinCapacity <= 0 {
		return 100
	}
	total := s.TotalParticipants
	if total < 0 {
		total = 0
	}
	ratio := float64(total) / float64(s.MinCapacity)
	if ratio > 1 {
		ratio = 1
	}
	return ratio * 100
}

func RemainingToMatch(s domain.Slot) int {
	return max(0, s.MinCapacity-s.TotalParticipants)
}

func IsFull(s domain.Slot) bool {
	return s.TotalParticipants >= s.MaxCapacity
}

func Classify(s domain.Slot) Phase {
	if s.TotalParticipants >= s.MinCapacity {
		return PhaseMatched
	}
	return PhaseSearching
}

type View struct {
	Progress          float64 `json:"progress"`
	RemainingToMatch  int     `json:"remaining_to_match"`
	IsFull            bool    `json:"is_full"`
	Phase             Phase   `json:"phase"`
	TotalParticipants int     `json:"total_participants"`
}

func Snapshot(s domain.Slot) View {
	return View{
		Progress:          Progress(s),
		RemainingToMatch:  RemainingToMatch(s),
		IsFull:            IsFull(s),
		Phase:             Classify(s),
		TotalParticipants: s.TotalParticipants,
	}
}
