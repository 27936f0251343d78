// Package seed serves the bundled fallback dataset used when the matching service is down.
package seed

import (
	_ "embed"
	"fmt"

	"github.com/stpnv0/SlotMatcher/internal/domain"
	"gopkg.in/yaml.v3"
)

const (
	// Capacities applied to seed slots, which do not record their own thresholds.
	DefaultMinCapacity = 2
	DefaultMaxCapacity = 6

	DefaultAddress = "Shibuya, Tokyo"
)

//go:embed data/seed.yaml
var bundled []byte

type calendarRecord struct {
	ID        string  `yaml:"id"`
	UserID    string  `yaml:"user_id"`
	HobbyID   string  `yaml:"hobby_id"`
	GroupID   *string `yaml:"group_id"`
	Date      string  `yaml:"date"`
	TimeSlot  string  `yaml:"time_slot"`
	Intensity string  `yaml:"intensity"`
	Attendees int     `yaml:"attendees"`
	Status    string  `yaml:"status"`
}

type groupRecord struct {
	ID          string `yaml:"id"`
	HobbyID     string `yaml:"hobby_id"`
	Location    string `yaml:"location"`
	Address     string `yaml:"address"`
	Description string `yaml:"description"`
	Capacity    int    `yaml:"capacity"`
}

type venueRecord struct {
	Name        string   `yaml:"name"`
	Address     string   `yaml:"address"`
	Category    string   `yaml:"category"`
	Rating      *float64 `yaml:"rating"`
	Capacity    *int     `yaml:"capacity"`
	PriceRange  string   `yaml:"price_range"`
	Description string   `yaml:"description"`
	Amenities   []string `yaml:"amenities"`
}

type dataset struct {
	Calendars []calendarRecord `yaml:"calendars"`
	Groups    []groupRecord    `yaml:"groups"`
	Venues    []venueRecord    `yaml:"venues"`
}

// Store is read-only after construction and safe for concurrent use.
type Store struct {
	calendars []calendarRecord
	groups    map[string]groupRecord
	venues    []venueRecord
}

// Load parses the dataset embedded in the binary.
func Load() (*Store, error) {
	return Parse(bundled)
}

func Parse(raw []byte) (*Store, error) {
	var ds dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("parse seed dataset: %w", err)
	}

	groups := make(map[string]groupRecord, len(ds.Groups))
	for _, g := range ds.Groups {
		if _, ok := groups[g.ID]; !ok {
			groups[g.ID] = g
		}
	}

	return &Store{
		calendars: ds.Calendars,
		groups:    groups,
		venues:    ds.Venues,
	}, nil
}

// SlotsByUser returns the user's slots in dataset order.
func (s *Store) SlotsByUser(userID string) []domain.SlotSummary {
	res := make([]domain.SlotSummary, 0)
	for _, c := range s.calendars {
		if c.UserID != userID {
			continue
		}
		res = append(res, domain.SlotSummary{
			ID:     c.ID,
			Date:   c.Date,
			Status: domain.ParseSlotStatus(c.Status),
		})
	}
	return res
}

// SlotDetail joins the calendar record with its group to build a full slot.
// Seed records carry a single attendees count, so it stands for both the owner's
// party and the total.
func (s *Store) SlotDetail(userID, slotID string) (*domain.Slot, error) {
	for _, c := range s.calendars {
		if c.ID != slotID {
			continue
		}

		owner := c.UserID
		if owner == "" {
			owner = userID
		}

		slot := &domain.Slot{
			ID:                c.ID,
			OwnerID:           owner,
			ActivityID:        c.HobbyID,
			Date:              c.Date,
			TimeOfDay:         domain.TimeOfDay(c.TimeSlot),
			Intensity:         domain.Intensity(c.Intensity),
			OwnerGroupSize:    c.Attendees,
			TotalParticipants: c.Attendees,
			MinCapacity:       DefaultMinCapacity,
			MaxCapacity:       DefaultMaxCapacity,
			Status:            domain.ParseSlotStatus(c.Status),
			Venues:            []domain.Venue{},
			Source:            domain.SourceSeed,
		}

		if c.GroupID != nil {
			if g, ok := s.groups[*c.GroupID]; ok {
				slot.Venues = append(slot.Venues, groupVenue(g))
			}
		}

		return slot, nil
	}

	return nil, domain.ErrSlotNotFound
}

// VenuesByCategory filters the venue catalog, keeping catalog order.
func (s *Store) VenuesByCategory(category string) []domain.Venue {
	res := make([]domain.Venue, 0)
	for _, v := range s.venues {
		if v.Category != category {
			continue
		}
		res = append(res, domain.Venue{
			Name:        v.Name,
			Address:     v.Address,
			Category:    v.Category,
			Rating:      v.Rating,
			Capacity:    v.Capacity,
			PriceRange:  v.PriceRange,
			Description: v.Description,
			Amenities:   append([]string(nil), v.Amenities...),
		})
	}
	return res
}

func groupVenue(g groupRecord) domain.Venue {
	address := g.Address
	if address == "" {
		address = DefaultAddress
	}

	v := domain.Venue{
		Name:        g.Location,
		Address:     address,
		Description: g.Description,
	}
	if g.Capacity > 0 {
		capacity := g.Capacity
		v.Capacity = &capacity
	}
	return v
}
