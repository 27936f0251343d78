package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stpnv0/SlotMatcher/internal/capacity"
	"github.com/stpnv0/SlotMatcher/internal/domain"
	"github.com/stpnv0/SlotMatcher/internal/matching"
	"github.com/stpnv0/SlotMatcher/internal/navigation"
	"github.com/stpnv0/SlotMatcher/internal/registry"
	"github.com/stpnv0/SlotMatcher/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStack(t *testing.T, baseURL string) *SlotService {
	t.Helper()

	client, err := matching.New(matching.Endpoints{BaseURL: baseURL})
	require.NoError(t, err)

	store, err := seed.Load()
	require.NoError(t, err)

	return NewSlotService(client, store, newTestLogger(t))
}

// fakeBackend keeps registered calendars in memory so a registration shows up
// in the next list call.
type fakeBackend struct {
	mu        sync.Mutex
	calendars map[string][]map[string]any
	forms     []matching.RegisterRequest
}

func newFakeBackend(t *testing.T) (*fakeBackend, *httptest.Server) {
	t.Helper()

	b := &fakeBackend{calendars: make(map[string][]map[string]any)}

	mux := http.NewServeMux()
	mux.HandleFunc("/users/u1/calendars", func(w http.ResponseWriter, _ *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		list := b.calendars["u1"]
		if list == nil {
			list = []map[string]any{}
		}
		_ = json.NewEncoder(w).Encode(list)
	})
	mux.HandleFunc("/users/u1/calendars/S1", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"userId":      "u1",
			"hobbyId":     1,
			"date":        "2025-06-01",
			"timeSlot":    "evening",
			"intensity":   "casual",
			"mincapacity": 4,
			"maxcapacity": 8,
			"attendees":   2,
			"count":       2,
			"status":      "recruiting",
			"shops":       []any{},
		})
	})
	mux.HandleFunc("/forms", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var req matching.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		b.mu.Lock()
		b.forms = append(b.forms, req)
		user := string(req.UserID)
		b.calendars[user] = append(b.calendars[user], map[string]any{
			"calendarId": "S1",
			"date":       req.Date,
			"status":     "recruiting",
		})
		b.mu.Unlock()

		_ = json.NewEncoder(w).Encode(map[string]any{"calendarId": "S1", "status": "recruiting"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return b, srv
}

// An empty date leads to registration; once registered and reloaded it leads to
// the lifecycle screen for the new slot.
func TestScenario_RegisterThenFollowSlot(t *testing.T) {
	backend, srv := newFakeBackend(t)
	svc := newStack(t, srv.URL)
	ctx := context.Background()

	reg := registry.New(svc)
	reg.Load(ctx, "u1")

	route := navigation.Resolve("2025-06-01", reg.Lookup("2025-06-01"))
	assert.Equal(t, navigation.TargetRegistration, route.Target)
	assert.Empty(t, route.SlotID)

	registration, err := svc.RegisterSlot(ctx, "u1", validInput())
	require.NoError(t, err)
	assert.Equal(t, &domain.Registration{SlotID: "S1", Status: domain.SlotStatusRecruiting}, registration)

	require.Len(t, backend.forms, 1)
	assert.Equal(t, matching.ID("u1"), backend.forms[0].UserID)
	assert.Equal(t, matching.ID("1"), backend.forms[0].HobbyID)
	assert.Equal(t, "recruiting", backend.forms[0].Status)

	reg.Load(ctx, "u1")

	route = navigation.Resolve("2025-06-01", reg.Lookup("2025-06-01"))
	assert.Equal(t, navigation.TargetLifecycle, route.Target)
	assert.Equal(t, "S1", route.SlotID)
	assert.Equal(t, "/recruiting?calendarId=S1&date=2025-06-01", route.Path())

	slot, err := svc.FetchSlotDetail(ctx, "u1", route.SlotID)
	require.NoError(t, err)

	view := capacity.Snapshot(*slot)
	assert.Equal(t, 50.0, view.Progress)
	assert.Equal(t, 2, view.RemainingToMatch)
	assert.False(t, view.IsFull)
	assert.Equal(t, capacity.PhaseSearching, view.Phase)
	assert.Equal(t, domain.SourceRemote, slot.Source)

	other := navigation.Resolve("2025-06-02", reg.Lookup("2025-06-02"))
	assert.Equal(t, navigation.TargetRegistration, other.Target)
}

// With the backend unreachable, the bundled dataset still answers.
func TestScenario_UnreachableBackendUsesSeed(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	svc := newStack(t, baseURL)
	ctx := context.Background()

	reg := registry.New(svc)
	reg.Load(ctx, "1")

	summary := reg.Lookup("2025-06-28")
	assert.Equal(t, "99", summary.ID)
	assert.Equal(t, domain.SlotStatusMatched, summary.Status)

	route := navigation.Resolve("2025-06-28", summary)
	assert.Equal(t, navigation.TargetProposal, route.Target)

	slot, err := svc.FetchSlotDetail(ctx, "1", "99")
	require.NoError(t, err)
	assert.Equal(t, domain.SourceSeed, slot.Source)
	require.Len(t, slot.Venues, 1)
	assert.Equal(t, "Strategy Lounge Meeple", slot.Venues[0].Name)
	assert.Equal(t, seed.DefaultMinCapacity, slot.MinCapacity)

	_, err = svc.FetchSlotDetail(ctx, "1", "does-not-exist")
	assert.ErrorIs(t, err, domain.ErrSlotNotFound)

	activities := svc.FetchActivityCatalog(ctx)
	assert.Len(t, activities, 4)

	_, err = svc.RegisterSlot(ctx, "1", validInput())
	assert.ErrorIs(t, err, domain.ErrRegistrationFailed)
}
