package ports

import "github.com/stpnv0/SlotMatcher/internal/domain"

type SeedStore interface {
	SlotsByUser(userID string) []domain.SlotSummary
	SlotDetail(userID, slotID string) (*domain.Slot, error)
	VenuesByCategory(category string) []domain.Venue
}
