// Package scheduler drives periodic slot refreshes for a lifecycle watch.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/stpnv0/SlotMatcher/internal/domain"
	"github.com/stpnv0/SlotMatcher/internal/lifecycle"
	"github.com/wb-go/wbf/logger"
)

const DefaultRefreshInterval = 5 * time.Second

type slotFetcher interface {
	FetchSlotDetail(ctx context.Context, userID, slotID string) (*domain.Slot, error)
}

type phaseTracker interface {
	Observe(slot domain.Slot) lifecycle.Phase
	Phase() lifecycle.Phase
	Stop()
}

// Poller refreshes one slot on a fixed interval and feeds every response to its tracker.
type Poller struct {
	source   slotFetcher
	tracker  phaseTracker
	interval time.Duration
	logger   logger.Logger

	userID string
	slotID string

	mu     sync.RWMutex
	latest *domain.Slot
}

func New(
	source slotFetcher,
	tracker phaseTracker,
	interval time.Duration,
	logger logger.Logger,
	userID, slotID string,
) *Poller {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	return &Poller{
		source:   source,
		tracker:  tracker,
		interval: interval,
		logger:   logger,
		userID:   userID,
		slotID:   slotID,
	}
}

// Seed records an already fetched slot as the latest state and feeds it to the tracker.
func (p *Poller) Seed(slot domain.Slot) {
	p.store(slot)
	p.tracker.Observe(slot)
}

// Latest returns a copy of the most recent slot, or nil before the first response.
func (p *Poller) Latest() *domain.Slot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.latest == nil {
		return nil
	}
	s := *p.latest
	return &s
}

// Run blocks until ctx is done, the tracker settles on matched or the slot
// reaches a terminal status other than matched. The tracker is stopped on return.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	defer p.tracker.Stop()

	p.logger.Info("poller started",
		logger.String("slot_id", p.slotID),
		logger.Duration("interval", p.interval),
	)

	for {
		if p.tracker.Phase() == lifecycle.PhaseMatched {
			p.logger.Info("poller finished, slot matched",
				logger.String("slot_id", p.slotID),
			)
			return
		}
		if status, ok := p.closedStatus(); ok {
			p.logger.Info("poller finished, slot no longer recruiting",
				logger.String("slot_id", p.slotID),
				logger.String("status", string(status)),
			)
			return
		}

		select {
		case <-ctx.Done():
			p.logger.Info("poller stopped",
				logger.String("slot_id", p.slotID),
			)
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

func (p *Poller) tick(ctx context.Context) {
	slot, err := p.source.FetchSlotDetail(ctx, p.userID, p.slotID)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		p.logger.Error("failed to refresh slot",
			logger.String("slot_id", p.slotID),
			logger.String("error", err.Error()),
		)
		return
	}

	p.store(*slot)
	phase := p.tracker.Observe(*slot)

	p.logger.Debug("slot refreshed",
		logger.String("slot_id", p.slotID),
		logger.Int("total_participants", slot.TotalParticipants),
		logger.String("phase", string(phase)),
	)
}

// closedStatus reports a terminal status that will never lead to a match.
// A matched status is left to the tracker so the found dwell can run out.
func (p *Poller) closedStatus() (domain.SlotStatus, bool) {
	latest := p.Latest()
	if latest == nil {
		return "", false
	}
	if latest.Status.Terminal() && latest.Status != domain.SlotStatusMatched {
		return latest.Status, true
	}
	return "", false
}

func (p *Poller) store(slot domain.Slot) {
	p.mu.Lock()
	p.latest = &slot
	p.mu.Unlock()
}
