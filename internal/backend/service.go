// Package backend is the reference matching service: it stores calendars in
// Postgres and matches pools of groups once they reach the hobby's minimum.
package backend

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/SlotMatcher/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const venueLimit = 3

type Capacity struct {
	DefaultMin int
	DefaultMax int
}

type Service struct {
	calendars CalendarRepo
	hobbies   HobbyRepo
	venues    VenueRepo
	capacity  Capacity
	logger    logger.Logger
}

func NewService(
	calendars CalendarRepo,
	hobbies HobbyRepo,
	venues VenueRepo,
	capacity Capacity,
	log logger.Logger,
) *Service {
	return &Service{
		calendars: calendars,
		hobbies:   hobbies,
		venues:    venues,
		capacity:  capacity,
		logger:    log,
	}
}

func (s *Service) ListHobbies(ctx context.Context) ([]*domain.Hobby, error) {
	return s.hobbies.List(ctx)
}

func (s *Service) ListCalendars(ctx context.Context, userID string) ([]*domain.Calendar, error) {
	return s.calendars.ListByUser(ctx, userID)
}

// Register stores a new calendar and reports whether its pool matched.
func (s *Service) Register(ctx context.Context, userID string, input domain.RegisterSlotInput) (*domain.Calendar, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", domain.ErrValidation)
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hobby, err := s.hobbies.GetByID(ctx, input.ActivityID)
	if err != nil {
		return nil, err
	}

	c := &domain.Calendar{
		ID:        uuid.New().String(),
		UserID:    userID,
		HobbyID:   hobby.ID,
		Date:      input.Date,
		TimeSlot:  input.TimeOfDay,
		Intensity: input.Intensity,
		Attendees: input.OwnerGroupSize,
		Status:    domain.SlotStatusRecruiting,
		CreatedAt: time.Now().UTC(),
	}

	if err = s.calendars.Create(ctx, c, s.minCapacity(hobby)); err != nil {
		return nil, fmt.Errorf("create calendar: %w", err)
	}

	s.logger.Info("calendar registered",
		logger.String("calendar_id", c.ID),
		logger.String("user_id", userID),
		logger.String("hobby", hobby.Name),
		logger.String("status", string(c.Status)),
	)

	return c, nil
}

// Detail joins a calendar with its hobby, its cohort size and, once matched,
// the first venues of the hobby's category.
func (s *Service) Detail(ctx context.Context, userID, calendarID string) (*domain.CalendarDetail, error) {
	c, err := s.calendars.GetByID(ctx, userID, calendarID)
	if err != nil {
		return nil, err
	}

	hobby, err := s.hobbies.GetByID(ctx, c.HobbyID)
	if err != nil {
		return nil, fmt.Errorf("get hobby: %w", err)
	}
	hobby.MinCapacity = s.minCapacity(hobby)
	hobby.MaxCapacity = s.maxCapacity(hobby)

	count, err := s.calendars.PoolCount(ctx, c)
	if err != nil {
		return nil, err
	}

	venues := []domain.Venue{}
	if c.Status == domain.SlotStatusMatched {
		venues, err = s.venues.ListByCategory(ctx, hobby.Name, venueLimit)
		if err != nil {
			return nil, fmt.Errorf("list venues: %w", err)
		}
	}

	return &domain.CalendarDetail{
		Calendar:  *c,
		Hobby:     *hobby,
		PoolCount: count,
		Venues:    venues,
	}, nil
}

func (s *Service) minCapacity(h *domain.Hobby) int {
	if h.MinCapacity > 0 {
		return h.MinCapacity
	}
	return s.capacity.DefaultMin
}

func (s *Service) maxCapacity(h *domain.Hobby) int {
	if h.MaxCapacity > 0 {
		return h.MaxCapacity
	}
	return s.capacity.DefaultMax
}
