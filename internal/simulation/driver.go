// Package simulation fakes other users joining a recruiting slot, for demos
// where no real matching traffic exists.
package simulation

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/stpnv0/SlotMatcher/internal/domain"
)

const (
	DefaultJoinProbability = 0.3

	venueLimit = 3
)

type slotSource interface {
	FetchSlotDetail(ctx context.Context, userID, slotID string) (*domain.Slot, error)
}

type venueFinder interface {
	VenueCatalog(ctx context.Context, activityID string) ([]domain.Venue, error)
}

// RandSource yields uniformly distributed values in [0, 1).
type RandSource interface {
	Float64() float64
}

type Option func(*Driver)

// WithVenues proposes venues from the activity's catalog when a simulated slot
// matches without any of its own.
func WithVenues(f venueFinder) Option {
	return func(d *Driver) { d.venues = f }
}

func WithRand(r RandSource) Option {
	return func(d *Driver) { d.rand = r }
}

func WithJoinProbability(p float64) Option {
	return func(d *Driver) {
		if p >= 0 && p <= 1 {
			d.joinProbability = p
		}
	}
}

// Driver serves slot details from a base source and grows the participant
// count of each slot on every later fetch.
type Driver struct {
	base            slotSource
	venues          venueFinder
	joinProbability float64

	mu    sync.Mutex
	rand  RandSource
	slots map[string]*domain.Slot
}

func NewDriver(base slotSource, opts ...Option) *Driver {
	d := &Driver{
		base:            base,
		joinProbability: DefaultJoinProbability,
		rand:            rand.New(rand.NewSource(time.Now().UnixNano())),
		slots:           make(map[string]*domain.Slot),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Driver) FetchSlotDetail(ctx context.Context, userID, slotID string) (*domain.Slot, error) {
	key := userID + "/" + slotID

	d.mu.Lock()
	current, ok := d.slots[key]
	d.mu.Unlock()

	if !ok {
		base, err := d.base.FetchSlotDetail(ctx, userID, slotID)
		if err != nil {
			return nil, err
		}

		s := *base
		s.Venues = append([]domain.Venue(nil), base.Venues...)
		s.Source = domain.SourceSimulated

		d.mu.Lock()
		if existing, raced := d.slots[key]; raced {
			s = *existing
		} else {
			stored := s
			d.slots[key] = &stored
		}
		d.mu.Unlock()

		s.Venues = append([]domain.Venue(nil), s.Venues...)
		return &s, nil
	}

	d.mu.Lock()
	needVenues := false
	if current.TotalParticipants < current.MinCapacity && d.rand.Float64() < d.joinProbability {
		current.TotalParticipants++
		if current.TotalParticipants >= current.MinCapacity {
			current.Status = domain.SlotStatusMatched
			needVenues = len(current.Venues) == 0
		}
	}
	out := *current
	d.mu.Unlock()

	if needVenues && d.venues != nil {
		// a failed lookup leaves the slot matched without venues
		if venues, err := d.venues.VenueCatalog(ctx, out.ActivityID); err == nil && len(venues) > 0 {
			if len(venues) > venueLimit {
				venues = venues[:venueLimit]
			}
			venues = append([]domain.Venue(nil), venues...)

			d.mu.Lock()
			current.Venues = venues
			d.mu.Unlock()

			out.Venues = venues
		}
	}

	out.Venues = append([]domain.Venue(nil), out.Venues...)
	return &out, nil
}

// Forget drops the simulated state of a slot, so the next fetch starts from the base again.
func (d *Driver) Forget(userID, slotID string) {
	d.mu.Lock()
	delete(d.slots, userID+"/"+slotID)
	d.mu.Unlock()
}
