package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stpnv0/SlotMatcher/internal/backend/mocks"
	"github.com/stpnv0/SlotMatcher/internal/domain"
	"github.com/stpnv0/SlotMatcher/internal/matching"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupBackend(t *testing.T) (*mocks.MockMatchingSvc, *httptest.Server) {
	t.Helper()
	svc := mocks.NewMockMatchingSvc(t)
	srv := httptest.NewServer(InitRouter("test", NewHandler(svc)))
	t.Cleanup(srv.Close)
	return svc, srv
}

func newClient(t *testing.T, srv *httptest.Server) *matching.Client {
	t.Helper()
	c, err := matching.New(matching.Endpoints{BaseURL: srv.URL})
	require.NoError(t, err)
	return c
}

func TestBackend_ListCalendars_ReadByClient(t *testing.T) {
	svc, srv := setupBackend(t)

	svc.EXPECT().ListCalendars(mock.Anything, "u1").Return([]*domain.Calendar{
		{ID: "c1", Date: "2025-06-01", Status: domain.SlotStatusRecruiting},
		{ID: "c2", Date: "2025-06-08", Status: domain.SlotStatusMatched},
	}, nil)

	slots, err := newClient(t, srv).ListSlots(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, domain.SlotSummary{ID: "c2", Date: "2025-06-08", Status: domain.SlotStatusMatched}, slots[1])
}

func TestBackend_Detail_ReadByClient(t *testing.T) {
	svc, srv := setupBackend(t)

	svc.EXPECT().Detail(mock.Anything, "u1", "c1").Return(&domain.CalendarDetail{
		Calendar: domain.Calendar{
			ID: "c1", UserID: "u1", HobbyID: "1", Date: "2025-06-01",
			TimeSlot: domain.Evening, Intensity: domain.IntensityCasual,
			Attendees: 2, Status: domain.SlotStatusMatched,
		},
		Hobby:     domain.Hobby{ID: "1", Name: "board games", MinCapacity: 4, MaxCapacity: 8},
		PoolCount: 5,
		Venues:    []domain.Venue{{Name: "Board Game Cafe Dice", Address: "1-2-3 Jinnan, Shibuya, Tokyo"}},
	}, nil)

	slot, err := newClient(t, srv).GetSlotDetail(context.Background(), "u1", "c1")

	require.NoError(t, err)
	assert.Equal(t, 2, slot.OwnerGroupSize)
	assert.Equal(t, 5, slot.TotalParticipants)
	assert.Equal(t, 4, slot.MinCapacity)
	assert.Equal(t, domain.SlotStatusMatched, slot.Status)
	require.Len(t, slot.Venues, 1)
	assert.Equal(t, "Board Game Cafe Dice", slot.Venues[0].Name)
}

func TestBackend_Detail_NotFound(t *testing.T) {
	svc, srv := setupBackend(t)

	svc.EXPECT().Detail(mock.Anything, "u1", "nope").Return(nil, domain.ErrSlotNotFound)

	_, err := newClient(t, srv).GetSlotDetail(context.Background(), "u1", "nope")

	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
}

func TestBackend_Register_FromClient(t *testing.T) {
	svc, srv := setupBackend(t)

	in := domain.RegisterSlotInput{
		ActivityID:     "1",
		Date:           "2025-06-01",
		TimeOfDay:      domain.Afternoon,
		Intensity:      domain.IntensitySerious,
		OwnerGroupSize: 3,
	}
	svc.EXPECT().Register(mock.Anything, "u1", in).
		Return(&domain.Calendar{ID: "c9", Status: domain.SlotStatusRecruiting}, nil)

	reg, err := newClient(t, srv).RegisterSlot(context.Background(), "u1", in)

	require.NoError(t, err)
	assert.Equal(t, "c9", reg.SlotID)
	assert.Equal(t, domain.SlotStatusRecruiting, reg.Status)
}

func TestBackend_Register_NumericIDs(t *testing.T) {
	svc, srv := setupBackend(t)

	svc.EXPECT().Register(mock.Anything, "7", mock.MatchedBy(func(in domain.RegisterSlotInput) bool {
		return in.ActivityID == "2"
	})).Return(&domain.Calendar{ID: "c1", Status: domain.SlotStatusRecruiting}, nil)

	body := []byte(`{"hobbyId":2,"userId":7,"date":"2025-06-01","timeSlot":"morning","intensity":"casual","attendees":1,"status":"recruiting"}`)
	resp, err := http.Post(srv.URL+"/forms", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestBackend_Register_ValidationError(t *testing.T) {
	svc, srv := setupBackend(t)

	svc.EXPECT().Register(mock.Anything, "u1", mock.Anything).
		Return(nil, domain.ErrValidation)

	body := []byte(`{"hobbyId":"1","userId":"u1","date":"bad","timeSlot":"morning","intensity":"casual","attendees":1}`)
	resp, err := http.Post(srv.URL+"/forms", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBackend_ListHobbies_ReadByClient(t *testing.T) {
	svc, srv := setupBackend(t)

	svc.EXPECT().ListHobbies(mock.Anything).Return([]*domain.Hobby{
		{ID: "1", Name: "board games"},
		{ID: "2", Name: "volleyball"},
	}, nil)

	activities, err := newClient(t, srv).ListActivities(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.Activity{
		{ID: "1", DisplayName: "board games"},
		{ID: "2", DisplayName: "volleyball"},
	}, activities)
}

func TestBackend_Health(t *testing.T) {
	_, srv := setupBackend(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}
