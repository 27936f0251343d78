package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/SlotMatcher/internal/domain"
	"github.com/stpnv0/SlotMatcher/internal/lifecycle"
	"github.com/stpnv0/SlotMatcher/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func recruitingSlot(total int) *domain.Slot {
	return &domain.Slot{
		ID:                "S1",
		OwnerID:           "u1",
		TotalParticipants: total,
		MinCapacity:       4,
		MaxCapacity:       8,
		Status:            domain.SlotStatusRecruiting,
	}
}

func TestPoller_Tick_FeedsTracker(t *testing.T) {
	fetcher := mocks.NewMockSlotFetcher(t)
	tracker := mocks.NewMockPhaseTracker(t)
	log := newTestLogger(t)

	p := New(fetcher, tracker, 30*time.Millisecond, log, "u1", "S1")

	fetcher.EXPECT().FetchSlotDetail(mock.Anything, "u1", "S1").Return(recruitingSlot(2), nil)
	tracker.EXPECT().Phase().Return(lifecycle.PhaseSearching)
	tracker.EXPECT().Observe(mock.Anything).Return(lifecycle.PhaseSearching)
	tracker.EXPECT().Stop().Once()

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	p.Run(ctx)

	latest := p.Latest()
	require.NotNil(t, latest)
	assert.Equal(t, 2, latest.TotalParticipants)
}

func TestPoller_Tick_HandlesError(t *testing.T) {
	fetcher := mocks.NewMockSlotFetcher(t)
	tracker := mocks.NewMockPhaseTracker(t)
	log := newTestLogger(t)

	p := New(fetcher, tracker, 30*time.Millisecond, log, "u1", "S1")

	fetcher.EXPECT().FetchSlotDetail(mock.Anything, "u1", "S1").Return(nil, errors.New("backend down"))
	tracker.EXPECT().Phase().Return(lifecycle.PhaseSearching)
	tracker.EXPECT().Stop().Once()

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	p.Run(ctx)

	assert.Nil(t, p.Latest())
	tracker.AssertNotCalled(t, "Observe", mock.Anything)
}

func TestPoller_LastResponseWins(t *testing.T) {
	fetcher := mocks.NewMockSlotFetcher(t)
	log := newTestLogger(t)
	tracker := lifecycle.NewTracker(time.Hour)

	p := New(fetcher, tracker, 20*time.Millisecond, log, "u1", "S1")

	fetcher.EXPECT().FetchSlotDetail(mock.Anything, "u1", "S1").Return(recruitingSlot(1), nil).Once()
	fetcher.EXPECT().FetchSlotDetail(mock.Anything, "u1", "S1").Return(recruitingSlot(3), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Millisecond)
	defer cancel()

	p.Run(ctx)

	latest := p.Latest()
	require.NotNil(t, latest)
	assert.Equal(t, 3, latest.TotalParticipants)
	assert.Equal(t, lifecycle.PhaseSearching, tracker.Phase())
}

func TestPoller_StopsWhenMatched(t *testing.T) {
	fetcher := mocks.NewMockSlotFetcher(t)
	log := newTestLogger(t)
	tracker := lifecycle.NewTracker(10 * time.Millisecond)

	p := New(fetcher, tracker, 20*time.Millisecond, log, "u1", "S1")

	fetcher.EXPECT().FetchSlotDetail(mock.Anything, "u1", "S1").Return(recruitingSlot(4), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop after the slot matched")
	}

	assert.Equal(t, lifecycle.PhaseMatched, tracker.Phase())
	assert.NoError(t, ctx.Err())
}

func TestPoller_StopsWhenSlotCancelled(t *testing.T) {
	fetcher := mocks.NewMockSlotFetcher(t)
	log := newTestLogger(t)
	tracker := lifecycle.NewTracker(time.Hour)

	p := New(fetcher, tracker, 10*time.Millisecond, log, "u1", "S1")
	p.Seed(*recruitingSlot(1))

	cancelled := recruitingSlot(1)
	cancelled.Status = domain.SlotStatusCancelled
	fetcher.EXPECT().FetchSlotDetail(mock.Anything, "u1", "S1").Return(cancelled, nil).Once()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller kept polling a cancelled slot")
	}

	assert.NoError(t, ctx.Err())
	assert.Equal(t, lifecycle.PhaseSearching, tracker.Phase())
	assert.Equal(t, domain.SlotStatusCancelled, p.Latest().Status)
}

func TestPoller_MatchedStatusWaitsForDwell(t *testing.T) {
	fetcher := mocks.NewMockSlotFetcher(t)
	log := newTestLogger(t)
	tracker := lifecycle.NewTracker(30 * time.Millisecond)

	matched := recruitingSlot(4)
	matched.Status = domain.SlotStatusMatched

	p := New(fetcher, tracker, 5*time.Millisecond, log, "u1", "S1")
	p.Seed(*matched)

	fetcher.EXPECT().FetchSlotDetail(mock.Anything, "u1", "S1").Return(matched, nil).Maybe()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	p.Run(ctx)

	assert.NoError(t, ctx.Err())
	assert.Equal(t, lifecycle.PhaseMatched, tracker.Phase())
}

func TestPoller_SeedCountsAsFirstResponse(t *testing.T) {
	fetcher := mocks.NewMockSlotFetcher(t)
	log := newTestLogger(t)
	tracker := lifecycle.NewTracker(time.Hour)

	p := New(fetcher, tracker, time.Hour, log, "u1", "S1")
	p.Seed(*recruitingSlot(5))

	require.NotNil(t, p.Latest())
	assert.Equal(t, lifecycle.PhaseFound, tracker.Phase())
	tracker.Stop()
}

func TestPoller_StopsOnContextCancel(t *testing.T) {
	fetcher := mocks.NewMockSlotFetcher(t)
	tracker := mocks.NewMockPhaseTracker(t)
	log := newTestLogger(t)

	p := New(fetcher, tracker, time.Second, log, "u1", "S1") // interval longer than test

	tracker.EXPECT().Phase().Return(lifecycle.PhaseSearching)
	tracker.EXPECT().Stop().Once()

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("poller did not stop on context cancel")
	}
}

func TestPoller_DefaultInterval(t *testing.T) {
	p := New(nil, lifecycle.NewTracker(0), 0, newTestLogger(t), "u1", "S1")

	assert.Equal(t, DefaultRefreshInterval, p.interval)
}
