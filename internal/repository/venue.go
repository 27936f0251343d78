package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/stpnv0/SlotMatcher/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type VenueRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewVenueRepo(db *dbpg.DB) *VenueRepository {
	return &VenueRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// ListByCategory returns venues in catalog order.
func (r *VenueRepository) ListByCategory(ctx context.Context, category string, limit int) ([]domain.Venue, error) {
	query := `SELECT name, address, category, rating, capacity, price_range, description, amenities
			  FROM venues
			  WHERE category = $1
			  ORDER BY id
			  LIMIT $2`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, category, limit)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	defer rows.Close()

	res := make([]domain.Venue, 0, limit)
	for rows.Next() {
		var (
			v        domain.Venue
			rating   sql.NullFloat64
			capacity sql.NullInt64
		)
		if err = rows.Scan(
			&v.Name, &v.Address, &v.Category, &rating, &capacity,
			&v.PriceRange, &v.Description, pq.Array(&v.Amenities),
		); err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		if rating.Valid {
			v.Rating = &rating.Float64
		}
		if capacity.Valid {
			c := int(capacity.Int64)
			v.Capacity = &c
		}
		res = append(res, v)
	}

	return res, rows.Err()
}
