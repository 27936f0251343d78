package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stpnv0/SlotMatcher/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type HobbyRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewHobbyRepo(db *dbpg.DB) *HobbyRepository {
	return &HobbyRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *HobbyRepository) List(ctx context.Context) ([]*domain.Hobby, error) {
	query := `SELECT id, name, min_capacity, max_capacity
			  FROM hobbies
			  ORDER BY id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list hobbies: %w", err)
	}
	defer rows.Close()

	var res []*domain.Hobby
	for rows.Next() {
		var h domain.Hobby
		if err = rows.Scan(&h.ID, &h.Name, &h.MinCapacity, &h.MaxCapacity); err != nil {
			return nil, fmt.Errorf("scan hobby: %w", err)
		}
		res = append(res, &h)
	}

	return res, rows.Err()
}

func (r *HobbyRepository) GetByID(ctx context.Context, id string) (*domain.Hobby, error) {
	query := `SELECT id, name, min_capacity, max_capacity
			  FROM hobbies
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get hobby: %w", err)
	}

	var h domain.Hobby
	if err = row.Scan(&h.ID, &h.Name, &h.MinCapacity, &h.MaxCapacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, fmt.Errorf("scan hobby: %w", err)
	}

	return &h, nil
}
