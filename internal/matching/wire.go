package matching

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID accepts both JSON strings and numbers; the matching service used both over time.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or a number, got %s", b)
	}
	*id = ID(n.String())
	return nil
}

// CalendarItem is one element of GET /users/{userId}/calendars.
// Older deployments spell the id field "calenderId".
type CalendarItem struct {
	CalendarID ID      `json:"calendarId,omitempty"`
	LegacyID   ID      `json:"calenderId,omitempty"`
	Date       string  `json:"date"`
	Status     *string `json:"status"`
}

type Shop struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// CalendarDetail is the body of GET /users/{userId}/calendars/{calendarId}.
// Attendees, Count and Capacity are pointers so that absent fields can be told apart from zero.
type CalendarDetail struct {
	UserID      ID      `json:"userId"`
	HobbyID     ID      `json:"hobbyId"`
	Date        string  `json:"date"`
	TimeSlot    string  `json:"timeSlot"`
	Intensity   string  `json:"intensity"`
	MinCapacity int     `json:"mincapacity"`
	MaxCapacity int     `json:"maxcapacity"`
	Attendees   *int    `json:"attendees,omitempty"`
	Count       *int    `json:"count,omitempty"`
	Capacity    *int    `json:"capacity,omitempty"`
	Status      *string `json:"status"`
	Shops       []Shop  `json:"shops"`
}

type Hobby struct {
	HobbyID ID     `json:"hobbyId"`
	Name    string `json:"name"`
}

type RegisterRequest struct {
	HobbyID   ID     `json:"hobbyId"`
	UserID    ID     `json:"userId"`
	Date      string `json:"date"`
	TimeSlot  string `json:"timeSlot"`
	Intensity string `json:"intensity"`
	Attendees int    `json:"attendees"`
	Status    string `json:"status"`
}

type RegisterResponse struct {
	CalendarID ID      `json:"calendarId,omitempty"`
	LegacyID   ID      `json:"calenderId,omitempty"`
	Status     *string `json:"status"`
}
