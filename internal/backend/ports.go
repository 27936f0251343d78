package backend

import (
	"context"

	"github.com/stpnv0/SlotMatcher/internal/domain"
)

type CalendarRepo interface {
	Create(ctx context.Context, c *domain.Calendar, minCapacity int) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Calendar, error)
	GetByID(ctx context.Context, userID, id string) (*domain.Calendar, error)
	PoolCount(ctx context.Context, c *domain.Calendar) (int, error)
}

type HobbyRepo interface {
	List(ctx context.Context) ([]*domain.Hobby, error)
	GetByID(ctx context.Context, id string) (*domain.Hobby, error)
}

type VenueRepo interface {
	ListByCategory(ctx context.Context, category string, limit int) ([]domain.Venue, error)
}
