package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO calendar-date format used for slot dates and registry keys.
const DateLayout = "2006-01-02"

type SlotStatus string

const (
	SlotStatusRecruiting SlotStatus = "recruiting"
	SlotStatusMatched    SlotStatus = "matched"
	SlotStatusClosed     SlotStatus = "closed"
	SlotStatusCancelled  SlotStatus = "cancelled"
	SlotStatusUnknown    SlotStatus = "unknown"
)

// ParseSlotStatus maps a backend status string onto the known set.
// "confirmed" comes from the older schema and means the slot already matched.
func ParseSlotStatus(s string) SlotStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "recruiting":
		return SlotStatusRecruiting
	case "matched", "confirmed":
		return SlotStatusMatched
	case "closed":
		return SlotStatusClosed
	case "cancelled", "canceled":
		return SlotStatusCancelled
	default:
		return SlotStatusUnknown
	}
}

// Terminal reports whether the slot no longer changes phase.
func (s SlotStatus) Terminal() bool {
	return s == SlotStatusMatched || s == SlotStatusClosed || s == SlotStatusCancelled
}

type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
)

func (t TimeOfDay) Valid() bool {
	return t == Morning || t == Afternoon || t == Evening
}

type Intensity string

const (
	IntensityCasual  Intensity = "casual"
	IntensitySerious Intensity = "serious"
)

func (i Intensity) Valid() bool {
	return i == IntensityCasual || i == IntensitySerious
}

type Source string

const (
	SourceRemote    Source = "remote"
	SourceSeed      Source = "seed"
	SourceSimulated Source = "simulated"
)

type Slot struct {
	ID                string     `json:"slot_id"`
	OwnerID           string     `json:"owner_id"`
	ActivityID        string     `json:"activity_id"`
	Date              string     `json:"date"`
	TimeOfDay         TimeOfDay  `json:"time_of_day"`
	Intensity         Intensity  `json:"intensity"`
	OwnerGroupSize    int        `json:"owner_group_size"`
	TotalParticipants int        `json:"total_participants"`
	MinCapacity       int        `json:"min_capacity"`
	MaxCapacity       int        `json:"max_capacity"`
	Status            SlotStatus `json:"status"`
	Venues            []Venue    `json:"venues"`
	Source            Source     `json:"source"`
}

// SlotSummary is the minimal projection used by the calendar.
type SlotSummary struct {
	ID     string     `json:"slot_id"`
	Date   string     `json:"date"`
	Status SlotStatus `json:"status"`
}

type RegisterSlotInput struct {
	ActivityID     string
	Date           string
	TimeOfDay      TimeOfDay
	Intensity      Intensity
	OwnerGroupSize int
}

func (in RegisterSlotInput) Validate() error {
	if in.ActivityID == "" {
		return fmt.Errorf("%w: activity is required", ErrValidation)
	}
	if _, err := time.Parse(DateLayout, in.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}
	if !in.TimeOfDay.Valid() {
		return fmt.Errorf("%w: time_of_day must be morning, afternoon or evening", ErrValidation)
	}
	if !in.Intensity.Valid() {
		return fmt.Errorf("%w: intensity must be casual or serious", ErrValidation)
	}
	if in.OwnerGroupSize < 1 {
		return fmt.Errorf("%w: owner_group_size must be at least 1", ErrValidation)
	}
	return nil
}

type Registration struct {
	SlotID string     `json:"slot_id"`
	Status SlotStatus `json:"status"`
}
