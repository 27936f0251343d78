package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/stpnv0/SlotMatcher/internal/domain"
	"github.com/stpnv0/SlotMatcher/internal/metrics"
	"github.com/stpnv0/SlotMatcher/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	opSlotList        = "slot_list"
	opSlotDetail      = "slot_detail"
	opActivityCatalog = "activity_catalog"
)

// SlotService answers reads from the matching service and falls back to the
// bundled seed dataset whenever the remote call fails. Registration never falls back.
type SlotService struct {
	remote ports.MatchingClient
	seed   ports.SeedStore
	logger logger.Logger
}

func NewSlotService(remote ports.MatchingClient, seed ports.SeedStore, log logger.Logger) *SlotService {
	return &SlotService{
		remote: remote,
		seed:   seed,
		logger: log,
	}
}

func (s *SlotService) FetchSlotList(ctx context.Context, userID string) []domain.SlotSummary {
	slots, err := s.remote.ListSlots(ctx, userID)
	if err == nil {
		return slots
	}

	s.fallback(opSlotList)
	s.logger.Warn("matching service unavailable, serving seed slot list",
		logger.String("user_id", userID),
		logger.String("error", err.Error()),
	)
	return s.seed.SlotsByUser(userID)
}

func (s *SlotService) FetchSlotDetail(ctx context.Context, userID, slotID string) (*domain.Slot, error) {
	slot, err := s.remote.GetSlotDetail(ctx, userID, slotID)
	if err == nil {
		return slot, nil
	}

	s.fallback(opSlotDetail)
	s.logger.Warn("matching service unavailable, serving seed slot detail",
		logger.String("user_id", userID),
		logger.String("slot_id", slotID),
		logger.String("error", err.Error()),
	)

	slot, err = s.seed.SlotDetail(userID, slotID)
	if err != nil {
		if errors.Is(err, domain.ErrSlotNotFound) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, fmt.Errorf("seed slot detail: %w", err)
	}

	return slot, nil
}

func (s *SlotService) FetchActivityCatalog(ctx context.Context) []domain.Activity {
	activities, err := s.remote.ListActivities(ctx)
	if err == nil {
		return activities
	}

	s.fallback(opActivityCatalog)
	s.logger.Warn("matching service unavailable, serving fallback activities",
		logger.String("error", err.Error()),
	)

	res := make([]domain.Activity, len(domain.FallbackActivities))
	copy(res, domain.FallbackActivities)
	return res
}

func (s *SlotService) RegisterSlot(ctx context.Context, userID string, input domain.RegisterSlotInput) (*domain.Registration, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrValidation)
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	reg, err := s.remote.RegisterSlot(ctx, userID, input)
	if err != nil {
		s.logger.Error("slot registration failed",
			logger.String("user_id", userID),
			logger.String("activity_id", input.ActivityID),
			logger.String("date", input.Date),
			logger.String("error", err.Error()),
		)
		return nil, &domain.RegistrationError{Cause: err}
	}

	s.logger.Info("slot registered",
		logger.String("user_id", userID),
		logger.String("slot_id", reg.SlotID),
		logger.String("status", string(reg.Status)),
	)

	return reg, nil
}

// VenueCatalog lists the seed venues whose category equals the activity's display name.
func (s *SlotService) VenueCatalog(ctx context.Context, activityID string) ([]domain.Venue, error) {
	for _, a := range s.FetchActivityCatalog(ctx) {
		if a.ID == activityID {
			return s.seed.VenuesByCategory(a.DisplayName), nil
		}
	}

	return nil, domain.ErrActivityNotFound
}

func (s *SlotService) fallback(op string) {
	metrics.FallbackTotal.WithLabelValues(op).Inc()
}
