package dto

import (
	"time"

	"github.com/stpnv0/SlotMatcher/internal/capacity"
	"github.com/stpnv0/SlotMatcher/internal/domain"
	"github.com/stpnv0/SlotMatcher/internal/navigation"
	"github.com/stpnv0/SlotMatcher/internal/service"
)

type ActivityResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

type VenueResponse struct {
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Category    string   `json:"category,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	Capacity    *int     `json:"capacity,omitempty"`
	PriceRange  string   `json:"price_range,omitempty"`
	Description string   `json:"description,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
}

type SlotSummaryResponse struct {
	ID     string `json:"id,omitempty"`
	Date   string `json:"date"`
	Status string `json:"status"`
}

type CapacityResponse struct {
	Progress          float64 `json:"progress"`
	RemainingToMatch  int     `json:"remaining_to_match"`
	IsFull            bool    `json:"is_full"`
	Phase             string  `json:"phase"`
	TotalParticipants int     `json:"total_participants"`
}

type SlotResponse struct {
	ID                string          `json:"id"`
	OwnerID           string          `json:"owner_id"`
	ActivityID        string          `json:"activity_id"`
	Date              string          `json:"date"`
	TimeOfDay         string          `json:"time_of_day"`
	Intensity         string          `json:"intensity"`
	OwnerGroupSize    int             `json:"owner_group_size"`
	TotalParticipants int             `json:"total_participants"`
	MinCapacity       int             `json:"min_capacity"`
	MaxCapacity       int             `json:"max_capacity"`
	Status            string          `json:"status"`
	Source            string          `json:"source"`
	Venues            []VenueResponse `json:"venues"`
}

type SlotDetailResponse struct {
	Slot     SlotResponse     `json:"slot"`
	Capacity CapacityResponse `json:"capacity"`
}

type RegistrationResponse struct {
	SlotID string `json:"slot_id"`
	Status string `json:"status"`
}

type RouteResponse struct {
	Target string `json:"target"`
	Date   string `json:"date,omitempty"`
	SlotID string `json:"slot_id,omitempty"`
	Path   string `json:"path"`
}

type WatchCreatedResponse struct {
	ID string `json:"id"`
}

type WatchResponse struct {
	ID        string             `json:"id"`
	UserID    string             `json:"user_id"`
	SlotID    string             `json:"slot_id"`
	Phase     string             `json:"phase"`
	Polling   bool               `json:"polling"`
	StartedAt string             `json:"started_at"`
	Detail    SlotDetailResponse `json:"detail"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToActivityResponse(a domain.Activity) ActivityResponse {
	return ActivityResponse{ID: a.ID, DisplayName: a.DisplayName}
}

func ToVenueResponse(v domain.Venue) VenueResponse {
	return VenueResponse{
		Name:        v.Name,
		Address:     v.Address,
		Category:    v.Category,
		Rating:      v.Rating,
		Capacity:    v.Capacity,
		PriceRange:  v.PriceRange,
		Description: v.Description,
		Amenities:   v.Amenities,
	}
}

func ToSlotSummaryResponse(s domain.SlotSummary) SlotSummaryResponse {
	return SlotSummaryResponse{ID: s.ID, Date: s.Date, Status: string(s.Status)}
}

func ToCapacityResponse(v capacity.View) CapacityResponse {
	return CapacityResponse{
		Progress:          v.Progress,
		RemainingToMatch:  v.RemainingToMatch,
		IsFull:            v.IsFull,
		Phase:             string(v.Phase),
		TotalParticipants: v.TotalParticipants,
	}
}

func ToSlotDetailResponse(s *domain.Slot) SlotDetailResponse {
	venues := make([]VenueResponse, 0, len(s.Venues))
	for _, v := range s.Venues {
		venues = append(venues, ToVenueResponse(v))
	}

	return SlotDetailResponse{
		Slot: SlotResponse{
			ID:                s.ID,
			OwnerID:           s.OwnerID,
			ActivityID:        s.ActivityID,
			Date:              s.Date,
			TimeOfDay:         string(s.TimeOfDay),
			Intensity:         string(s.Intensity),
			OwnerGroupSize:    s.OwnerGroupSize,
			TotalParticipants: s.TotalParticipants,
			MinCapacity:       s.MinCapacity,
			MaxCapacity:       s.MaxCapacity,
			Status:            string(s.Status),
			Source:            string(s.Source),
			Venues:            venues,
		},
		Capacity: ToCapacityResponse(capacity.Snapshot(*s)),
	}
}

func ToRegistrationResponse(r *domain.Registration) RegistrationResponse {
	return RegistrationResponse{SlotID: r.SlotID, Status: string(r.Status)}
}

func ToRouteResponse(r navigation.Route) RouteResponse {
	return RouteResponse{
		Target: string(r.Target),
		Date:   r.Date,
		SlotID: r.SlotID,
		Path:   r.Path(),
	}
}

func ToWatchResponse(w *service.WatchSnapshot) WatchResponse {
	return WatchResponse{
		ID:        w.ID,
		UserID:    w.UserID,
		SlotID:    w.SlotID,
		Phase:     string(w.Phase),
		Polling:   w.Polling,
		StartedAt: w.StartedAt.Format(time.RFC3339),
		Detail:    ToSlotDetailResponse(&w.Slot),
	}
}
