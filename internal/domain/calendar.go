package domain

import "time"

// Hobby, Calendar and CalendarDetail are the matching service's own records.
// A pool is every calendar sharing hobby, date, time slot and intensity.

type Hobby struct {
	ID          string
	Name        string
	MinCapacity int
	MaxCapacity int
}

type Calendar struct {
	ID        string
	UserID    string
	HobbyID   string
	Date      string
	TimeSlot  TimeOfDay
	Intensity Intensity
	Attendees int
	Status    SlotStatus
	// CohortID is stamped on every calendar of a pool when it matches; empty while recruiting.
	CohortID  string
	CreatedAt time.Time
}

type CalendarDetail struct {
	Calendar  Calendar
	Hobby     Hobby
	PoolCount int
	Venues    []Venue
}
