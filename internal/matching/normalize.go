package matching

import (
	"time"

	"github.com/stpnv0/SlotMatcher/internal/domain"
)

// Every schema variant of the matching service is mapped here and nowhere else.

func pickID(current, legacy ID) string {
	if current != "" {
		return string(current)
	}
	return string(legacy)
}

func statusOf(s *string) domain.SlotStatus {
	if s == nil {
		return domain.SlotStatusUnknown
	}
	return domain.ParseSlotStatus(*s)
}

// normalizeDate trims timestamps down to their calendar date so registry lookups
// by "YYYY-MM-DD" keep working when the backend sends RFC 3339 values.
func normalizeDate(s string) string {
	if len(s) > len(domain.DateLayout) {
		if _, err := time.Parse(domain.DateLayout, s[:len(domain.DateLayout)]); err == nil {
			return s[:len(domain.DateLayout)]
		}
	}
	return s
}

func toSummary(item CalendarItem) domain.SlotSummary {
	return domain.SlotSummary{
		ID:     pickID(item.CalendarID, item.LegacyID),
		Date:   normalizeDate(item.Date),
		Status: statusOf(item.Status),
	}
}

// groupSizes resolves the two historical count layouts.
// With both attendees and count present, attendees is the owner's party and count the
// aggregate. With a single field, it stands for both. Capacity is the oldest name for attendees.
func groupSizes(d CalendarDetail) (owner, total int) {
	attendees := d.Attendees
	if attendees == nil {
		attendees = d.Capacity
	}

	switch {
	case attendees != nil && d.Count != nil:
		return *attendees, max(*d.Count, *attendees)
	case attendees != nil:
		return *attendees, *attendees
	case d.Count != nil:
		return *d.Count, *d.Count
	default:
		return 0, 0
	}
}

func toSlot(slotID string, d CalendarDetail) domain.Slot {
	owner, total := groupSizes(d)

	venues := make([]domain.Venue, 0, len(d.Shops))
	for _, s := range d.Shops {
		venues = append(venues, domain.Venue{Name: s.Name, Address: s.Address})
	}

	return domain.Slot{
		ID:                slotID,
		OwnerID:           string(d.UserID),
		ActivityID:        string(d.HobbyID),
		Date:              normalizeDate(d.Date),
		TimeOfDay:         domain.TimeOfDay(d.TimeSlot),
		Intensity:         domain.Intensity(d.Intensity),
		OwnerGroupSize:    owner,
		TotalParticipants: total,
		MinCapacity:       d.MinCapacity,
		MaxCapacity:       d.MaxCapacity,
		Status:            statusOf(d.Status),
		Venues:            venues,
		Source:            domain.SourceRemote,
	}
}

func toActivity(h Hobby) domain.Activity {
	return domain.Activity{ID: string(h.HobbyID), DisplayName: h.Name}
}

func toRegisterRequest(userID string, in domain.RegisterSlotInput) RegisterRequest {
	return RegisterRequest{
		HobbyID:   ID(in.ActivityID),
		UserID:    ID(userID),
		Date:      in.Date,
		TimeSlot:  string(in.TimeOfDay),
		Intensity: string(in.Intensity),
		Attendees: in.OwnerGroupSize,
		Status:    string(domain.SlotStatusRecruiting),
	}
}
