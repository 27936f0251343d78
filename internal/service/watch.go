package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/stpnv0/SlotMatcher/internal/capacity"
	"github.com/stpnv0/SlotMatcher/internal/domain"
	"github.com/stpnv0/SlotMatcher/internal/lifecycle"
	"github.com/stpnv0/SlotMatcher/internal/metrics"
	"github.com/stpnv0/SlotMatcher/internal/scheduler"
	"github.com/stpnv0/SlotMatcher/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	watchIDLength = 12

	// DefaultWatchIdleTTL bounds how long a watch survives without being read.
	DefaultWatchIdleTTL = 2 * time.Minute
)

type WatchSnapshot struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	SlotID    string          `json:"slot_id"`
	Phase     lifecycle.Phase `json:"phase"`
	Slot      domain.Slot     `json:"slot"`
	Capacity  capacity.View   `json:"capacity"`
	Polling   bool            `json:"polling"`
	StartedAt time.Time       `json:"started_at"`
}

type watch struct {
	id        string
	userID    string
	slotID    string
	startedAt time.Time
	tracker   *lifecycle.Tracker
	poller    *scheduler.Poller
	cancel    context.CancelFunc
	done      chan struct{}
	lastSeen  time.Time
}

func (w *watch) finished() bool {
	select {
	case <-w.done:
		return true
	default:
		return false
	}
}

type WatchOption func(*WatchService)

// WithIdleTTL sets how long an unread watch keeps polling before it is reaped.
func WithIdleTTL(ttl time.Duration) WatchOption {
	return func(s *WatchService) {
		if ttl > 0 {
			s.idleTTL = ttl
		}
	}
}

func WithWatchClock(now func() time.Time) WatchOption {
	return func(s *WatchService) { s.now = now }
}

// WatchService runs one poller and tracker per watched slot.
type WatchService struct {
	source   ports.SlotSource
	dwell    time.Duration
	interval time.Duration
	idleTTL  time.Duration
	now      func() time.Time
	logger   logger.Logger

	mu      sync.Mutex
	watches map[string]*watch

	stopReaper chan struct{}
	reaperDone chan struct{}
	closeOnce  sync.Once
}

// NewWatchService starts a reaper that drops watches nobody has read for the idle TTL.
// Close must be called to stop it.
func NewWatchService(
	source ports.SlotSource,
	dwell, interval time.Duration,
	log logger.Logger,
	opts ...WatchOption,
) *WatchService {
	s := &WatchService{
		source:     source,
		dwell:      dwell,
		interval:   interval,
		idleTTL:    DefaultWatchIdleTTL,
		now:        time.Now,
		logger:     log,
		watches:    make(map[string]*watch),
		stopReaper: make(chan struct{}),
		reaperDone: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	go s.reapLoop()

	return s
}

// Start fetches the slot once and keeps refreshing it in the background until
// it settles on matched, the watch is stopped or nobody reads it for the idle TTL.
// ctx only bounds the first fetch.
func (s *WatchService) Start(ctx context.Context, userID, slotID string) (string, error) {
	slot, err := s.source.FetchSlotDetail(ctx, userID, slotID)
	if err != nil {
		return "", fmt.Errorf("fetch slot: %w", err)
	}

	id, err := gonanoid.New(watchIDLength)
	if err != nil {
		return "", fmt.Errorf("generate watch id: %w", err)
	}

	tracker := lifecycle.NewTracker(s.dwell, lifecycle.WithListener(func(from, to lifecycle.Phase) {
		s.logger.Info("watch phase changed",
			logger.String("watch_id", id),
			logger.String("slot_id", slotID),
			logger.String("from", string(from)),
			logger.String("to", string(to)),
		)
	}))

	poller := scheduler.New(s.source, tracker, s.interval, s.logger, userID, slotID)
	poller.Seed(*slot)

	runCtx, cancel := context.WithCancel(context.Background())
	w := &watch{
		id:        id,
		userID:    userID,
		slotID:    slotID,
		startedAt: s.now(),
		tracker:   tracker,
		poller:    poller,
		cancel:    cancel,
		done:      make(chan struct{}),
		lastSeen:  s.now(),
	}

	s.mu.Lock()
	s.watches[id] = w
	s.mu.Unlock()

	metrics.ActiveWatches.Inc()
	go func() {
		defer close(w.done)
		defer metrics.ActiveWatches.Dec()
		poller.Run(runCtx)
	}()

	s.logger.Info("watch started",
		logger.String("watch_id", id),
		logger.String("user_id", userID),
		logger.String("slot_id", slotID),
	)

	return id, nil
}

// Get returns the current state of a watch and marks it as seen. A watch whose
// poller already finished is dropped once this final state has been read.
func (s *WatchService) Get(id string) (*WatchSnapshot, error) {
	s.mu.Lock()
	w, ok := s.watches[id]
	if !ok {
		s.mu.Unlock()
		return nil, domain.ErrWatchNotFound
	}
	w.lastSeen = s.now()
	finished := w.finished()
	if finished {
		delete(s.watches, id)
	}
	s.mu.Unlock()

	snap := &WatchSnapshot{
		ID:        w.id,
		UserID:    w.userID,
		SlotID:    w.slotID,
		Phase:     w.tracker.Phase(),
		Polling:   !finished,
		StartedAt: w.startedAt,
	}

	if latest := w.poller.Latest(); latest != nil {
		snap.Slot = *latest
		snap.Capacity = capacity.Snapshot(*latest)
	}

	if finished {
		s.logger.Debug("finished watch evicted", logger.String("watch_id", id))
	}

	return snap, nil
}

// Stop cancels the watch and waits for its poller to exit.
func (s *WatchService) Stop(id string) error {
	s.mu.Lock()
	w, ok := s.watches[id]
	delete(s.watches, id)
	s.mu.Unlock()
	if !ok {
		return domain.ErrWatchNotFound
	}

	w.cancel()
	<-w.done

	s.logger.Info("watch stopped", logger.String("watch_id", id))
	return nil
}

// Close stops the reaper and every watch.
func (s *WatchService) Close() {
	s.closeOnce.Do(func() {
		close(s.stopReaper)
		<-s.reaperDone
	})

	s.mu.Lock()
	watches := s.watches
	s.watches = make(map[string]*watch)
	s.mu.Unlock()

	for _, w := range watches {
		w.cancel()
	}
	for _, w := range watches {
		<-w.done
	}
}

func (s *WatchService) reapLoop() {
	defer close(s.reaperDone)

	ticker := time.NewTicker(s.reapInterval())
	defer ticker.Stop()

	for {
		select {
		case <-s.stopReaper:
			return
		case <-ticker.C:
			s.reapIdle()
		}
	}
}

func (s *WatchService) reapInterval() time.Duration {
	interval := s.idleTTL / 2
	if interval < time.Millisecond {
		interval = time.Millisecond
	}
	return interval
}

// reapIdle cancels and removes watches not read within the idle TTL.
func (s *WatchService) reapIdle() int {
	deadline := s.now().Add(-s.idleTTL)

	s.mu.Lock()
	var expired []*watch
	for id, w := range s.watches {
		if w.lastSeen.Before(deadline) {
			expired = append(expired, w)
			delete(s.watches, id)
		}
	}
	s.mu.Unlock()

	for _, w := range expired {
		w.cancel()
		<-w.done
		s.logger.Info("idle watch reaped",
			logger.String("watch_id", w.id),
			logger.String("slot_id", w.slotID),
			logger.Duration("idle_ttl", s.idleTTL),
		)
	}

	return len(expired)
}
