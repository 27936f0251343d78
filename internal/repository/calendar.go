package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/stpnv0/SlotMatcher/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const calendarColumns = `id, user_id, hobby_id, to_char(date, 'YYYY-MM-DD'),
			  time_slot, intensity, attendees, status, COALESCE(cohort_id::text, ''), created_at`

// recruitingFilter matches the open cohort of a pool: same hobby, date, time slot
// and intensity, not yet matched.
const recruitingFilter = `hobby_id = $1 AND date = $2 AND time_slot = $3 AND intensity = $4
			  AND status = $5 AND cohort_id IS NULL`

type CalendarRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCalendarRepo(db *dbpg.DB) *CalendarRepository {
	return &CalendarRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// Create inserts c as recruiting and, in the same transaction, matches the whole
// recruiting cohort of its pool once their attendees reach minCapacity. A matched
// cohort gets a fresh cohort id. c.Status and c.CohortID reflect the result.
func (r *CalendarRepository) Create(ctx context.Context, c *domain.Calendar, minCapacity int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Блокировка строки хобби сериализует регистрации в один пул
	var hobbyID string
	lockQuery := `SELECT id FROM hobbies WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, c.HobbyID).Scan(&hobbyID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrActivityNotFound
		}
		return fmt.Errorf("lock hobby: %w", err)
	}

	insertQuery := `INSERT INTO calendars (id, user_id, hobby_id, date, time_slot, intensity, attendees, status, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err = tx.ExecContext(
		ctx, insertQuery,
		c.ID, c.UserID, c.HobbyID, c.Date, c.TimeSlot, c.Intensity,
		c.Attendees, domain.SlotStatusRecruiting, c.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert calendar: %w", err)
	}

	var pooled int
	sumQuery := `SELECT COALESCE(SUM(attendees), 0) FROM calendars WHERE ` + recruitingFilter
	if err = tx.QueryRowContext(
		ctx, sumQuery,
		c.HobbyID, c.Date, c.TimeSlot, c.Intensity, domain.SlotStatusRecruiting,
	).Scan(&pooled); err != nil {
		return fmt.Errorf("sum pool attendees: %w", err)
	}

	c.Status = domain.SlotStatusRecruiting
	c.CohortID = ""
	if pooled >= minCapacity {
		cohortID := uuid.NewString()
		matchQuery := `UPDATE calendars SET status = $6, cohort_id = $7 WHERE ` + recruitingFilter
		if _, err = tx.ExecContext(
			ctx, matchQuery,
			c.HobbyID, c.Date, c.TimeSlot, c.Intensity,
			domain.SlotStatusRecruiting, domain.SlotStatusMatched, cohortID,
		); err != nil {
			return fmt.Errorf("match pool: %w", err)
		}
		c.Status = domain.SlotStatusMatched
		c.CohortID = cohortID
	}

	return tx.Commit()
}

func (r *CalendarRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Calendar, error) {
	query := `SELECT ` + calendarColumns + `
              FROM calendars
              WHERE user_id = $1
              ORDER BY date, created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list calendars by user: %w", err)
	}
	defer rows.Close()

	var res []*domain.Calendar
	for rows.Next() {
		c, err := scanCalendar(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}

	return res, rows.Err()
}

func (r *CalendarRepository) GetByID(ctx context.Context, userID, id string) (*domain.Calendar, error) {
	query := `SELECT ` + calendarColumns + `
			  FROM calendars
			  WHERE id::text = $1 AND user_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, userID)
	if err != nil {
		return nil, fmt.Errorf("get calendar: %w", err)
	}

	c, err := scanCalendar(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, err
	}

	return c, nil
}

// PoolCount sums the attendees of c's cohort, c included.
func (r *CalendarRepository) PoolCount(ctx context.Context, c *domain.Calendar) (int, error) {
	query, args, ok := cohortQuery(c)
	if !ok {
		return c.Attendees, nil
	}

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return 0, fmt.Errorf("pool count: %w", err)
	}

	var n int
	if err = row.Scan(&n); err != nil {
		return 0, fmt.Errorf("scan pool count: %w", err)
	}

	return n, nil
}

// cohortQuery picks the rows that share c's cohort. A matched calendar is keyed
// by its cohort id, so later cohorts of the same pool stay separate. Calendars
// without a cohort that are no longer recruiting count alone.
func cohortQuery(c *domain.Calendar) (string, []any, bool) {
	const sum = `SELECT COALESCE(SUM(attendees), 0) FROM calendars WHERE `

	switch {
	case c.CohortID != "":
		return sum + `cohort_id = $1`, []any{c.CohortID}, true
	case c.Status == domain.SlotStatusRecruiting:
		return sum + recruitingFilter,
			[]any{c.HobbyID, c.Date, c.TimeSlot, c.Intensity, domain.SlotStatusRecruiting},
			true
	default:
		return "", nil, false
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCalendar(s scanner) (*domain.Calendar, error) {
	var c domain.Calendar
	err := s.Scan(
		&c.ID, &c.UserID, &c.HobbyID, &c.Date,
		&c.TimeSlot, &c.Intensity, &c.Attendees, &c.Status, &c.CohortID, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan calendar: %w", err)
	}
	return &c, nil
}
