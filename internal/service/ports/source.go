package ports

import (
	"context"

	"github.com/stpnv0/SlotMatcher/internal/domain"
)

// SlotSource is what a lifecycle watch polls.
type SlotSource interface {
	FetchSlotDetail(ctx context.Context, userID, slotID string) (*domain.Slot, error)
}
