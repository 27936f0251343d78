package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stpnv0/SlotMatcher/internal/domain"
	"github.com/stpnv0/SlotMatcher/internal/service/ports/mocks"
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

var errBackendDown = errors.New("dial tcp: connection refused")

func validInput() domain.RegisterSlotInput {
	return domain.RegisterSlotInput{
		ActivityID:     "1",
		Date:           "2025-06-01",
		TimeOfDay:      domain.Evening,
		Intensity:      domain.IntensityCasual,
		OwnerGroupSize: 2,
	}
}

func TestSlotService_FetchSlotList_Remote(t *testing.T) {
	remote := mocks.NewMockMatchingClient(t)
	seed := mocks.NewMockSeedStore(t)
	svc := NewSlotService(remote, seed, newTestLogger(t))

	want := []domain.SlotSummary{{ID: "S1", Date: "2025-06-01", Status: domain.SlotStatusRecruiting}}
	remote.EXPECT().ListSlots(mock.Anything, "u1").Return(want, nil)

	got := svc.FetchSlotList(context.Background(), "u1")

	assert.Equal(t, want, got)
	seed.AssertNotCalled(t, "SlotsByUser", mock.Anything)
}

func TestSlotService_FetchSlotList_FallsBackToSeed(t *testing.T) {
	remote := mocks.NewMockMatchingClient(t)
	seed := mocks.NewMockSeedStore(t)
	svc := NewSlotService(remote, seed, newTestLogger(t))

	want := []domain.SlotSummary{{ID: "99", Date: "2025-06-28", Status: domain.SlotStatusMatched}}
	remote.EXPECT().ListSlots(mock.Anything, "u1").Return(nil, errBackendDown)
	seed.EXPECT().SlotsByUser("u1").Return(want)

	got := svc.FetchSlotList(context.Background(), "u1")

	assert.Equal(t, want, got)
}

func TestSlotService_FetchSlotDetail_Remote(t *testing.T) {
	remote := mocks.NewMockMatchingClient(t)
	seed := mocks.NewMockSeedStore(t)
	svc := NewSlotService(remote, seed, newTestLogger(t))

	want := &domain.Slot{ID: "S1", Source: domain.SourceRemote}
	remote.EXPECT().GetSlotDetail(mock.Anything, "u1", "S1").Return(want, nil)

	got, err := svc.FetchSlotDetail(context.Background(), "u1", "S1")

	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestSlotService_FetchSlotDetail_FallsBackToSeed(t *testing.T) {
	remote := mocks.NewMockMatchingClient(t)
	seed := mocks.NewMockSeedStore(t)
	svc := NewSlotService(remote, seed, newTestLogger(t))

	want := &domain.Slot{ID: "99", Source: domain.SourceSeed}
	remote.EXPECT().GetSlotDetail(mock.Anything, "u1", "99").Return(nil, errBackendDown)
	seed.EXPECT().SlotDetail("u1", "99").Return(want, nil)

	got, err := svc.FetchSlotDetail(context.Background(), "u1", "99")

	require.NoError(t, err)
	assert.Equal(t, domain.SourceSeed, got.Source)
}

func TestSlotService_FetchSlotDetail_NotFoundAnywhere(t *testing.T) {
	remote := mocks.NewMockMatchingClient(t)
	seed := mocks.NewMockSeedStore(t)
	svc := NewSlotService(remote, seed, newTestLogger(t))

	remote.EXPECT().GetSlotDetail(mock.Anything, "u1", "404").Return(nil, errBackendDown)
	seed.EXPECT().SlotDetail("u1", "404").Return(nil, domain.ErrSlotNotFound)

	_, err := svc.FetchSlotDetail(context.Background(), "u1", "404")

	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
	assert.NotErrorIs(t, err, errBackendDown)
}

func TestSlotService_FetchActivityCatalog_Remote(t *testing.T) {
	remote := mocks.NewMockMatchingClient(t)
	svc := NewSlotService(remote, mocks.NewMockSeedStore(t), newTestLogger(t))

	want := []domain.Activity{{ID: "7", DisplayName: "chess"}}
	remote.EXPECT().ListActivities(mock.Anything).Return(want, nil)

	assert.Equal(t, want, svc.FetchActivityCatalog(context.Background()))
}

func TestSlotService_FetchActivityCatalog_EmptyRemoteIsValid(t *testing.T) {
	remote := mocks.NewMockMatchingClient(t)
	svc := NewSlotService(remote, mocks.NewMockSeedStore(t), newTestLogger(t))

	remote.EXPECT().ListActivities(mock.Anything).Return([]domain.Activity{}, nil)

	assert.Empty(t, svc.FetchActivityCatalog(context.Background()))
}

func TestSlotService_FetchActivityCatalog_Fallback(t *testing.T) {
	remote := mocks.NewMockMatchingClient(t)
	svc := NewSlotService(remote, mocks.NewMockSeedStore(t), newTestLogger(t))

	remote.EXPECT().ListActivities(mock.Anything).Return(nil, errBackendDown)

	got := svc.FetchActivityCatalog(context.Background())

	require.Len(t, got, 4)
	assert.Equal(t, domain.FallbackActivities, got)

	got[0].DisplayName = "changed"
	assert.NotEqual(t, "changed", domain.FallbackActivities[0].DisplayName)
}

func TestSlotService_RegisterSlot_Success(t *testing.T) {
	remote := mocks.NewMockMatchingClient(t)
	svc := NewSlotService(remote, mocks.NewMockSeedStore(t), newTestLogger(t))

	in := validInput()
	remote.EXPECT().RegisterSlot(mock.Anything, "u1", in).
		Return(&domain.Registration{SlotID: "S9", Status: domain.SlotStatusRecruiting}, nil)

	reg, err := svc.RegisterSlot(context.Background(), "u1", in)

	require.NoError(t, err)
	assert.Equal(t, "S9", reg.SlotID)
	assert.Equal(t, domain.SlotStatusRecruiting, reg.Status)
}

func TestSlotService_RegisterSlot_Validation(t *testing.T) {
	remote := mocks.NewMockMatchingClient(t)
	svc := NewSlotService(remote, mocks.NewMockSeedStore(t), newTestLogger(t))

	in := validInput()
	in.OwnerGroupSize = 0

	_, err := svc.RegisterSlot(context.Background(), "u1", in)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.RegisterSlot(context.Background(), "", validInput())
	assert.ErrorIs(t, err, domain.ErrValidation)

	remote.AssertNotCalled(t, "RegisterSlot", mock.Anything, mock.Anything, mock.Anything)
}

func TestSlotService_RegisterSlot_FailureHasNoFallback(t *testing.T) {
	remote := mocks.NewMockMatchingClient(t)
	seed := mocks.NewMockSeedStore(t)
	svc := NewSlotService(remote, seed, newTestLogger(t))

	remote.EXPECT().RegisterSlot(mock.Anything, "u1", mock.Anything).Return(nil, errBackendDown).Once()

	reg, err := svc.RegisterSlot(context.Background(), "u1", validInput())

	assert.Nil(t, reg)
	assert.ErrorIs(t, err, domain.ErrRegistrationFailed)
	assert.ErrorIs(t, err, errBackendDown)

	var regErr *domain.RegistrationError
	require.ErrorAs(t, err, &regErr)
	assert.Equal(t, errBackendDown, regErr.Cause)
}

func TestSlotService_VenueCatalog(t *testing.T) {
	remote := mocks.NewMockMatchingClient(t)
	seed := mocks.NewMockSeedStore(t)
	svc := NewSlotService(remote, seed, newTestLogger(t))

	venues := []domain.Venue{{Name: "Board Game Cafe Dice", Category: "board games"}}
	remote.EXPECT().ListActivities(mock.Anything).Return([]domain.Activity{{ID: "1", DisplayName: "board games"}}, nil)
	seed.EXPECT().VenuesByCategory("board games").Return(venues)

	got, err := svc.VenueCatalog(context.Background(), "1")

	require.NoError(t, err)
	assert.Equal(t, venues, got)
}

func TestSlotService_VenueCatalog_UnknownActivity(t *testing.T) {
	remote := mocks.NewMockMatchingClient(t)
	svc := NewSlotService(remote, mocks.NewMockSeedStore(t), newTestLogger(t))

	remote.EXPECT().ListActivities(mock.Anything).Return([]domain.Activity{{ID: "1", DisplayName: "board games"}}, nil)

	_, err := svc.VenueCatalog(context.Background(), "42")

	assert.ErrorIs(t, err, domain.ErrActivityNotFound)
}
