package ports

import (
	"context"

	"github.com/stpnv0/SlotMatcher/internal/domain"
)

type MatchingClient interface {
	ListSlots(ctx context.Context, userID string) ([]domain.SlotSummary, error)
	GetSlotDetail(ctx context.Context, userID, slotID string) (*domain.Slot, error)
	ListActivities(ctx context.Context) ([]domain.Activity, error)
	RegisterSlot(ctx context.Context, userID string, in domain.RegisterSlotInput) (*domain.Registration, error)
}
