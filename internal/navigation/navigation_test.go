package navigation

import (
	"context"
	"errors"
	"testing"

	"github.com/stpnv0/SlotMatcher/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Table(t *testing.T) {
	tests := []struct {
		status domain.SlotStatus
		want   Target
	}{
		{domain.SlotStatusUnknown, TargetRegistration},
		{domain.SlotStatusRecruiting, TargetLifecycle},
		{domain.SlotStatusMatched, TargetProposal},
		{domain.SlotStatusClosed, TargetRegistration},
		{domain.SlotStatusCancelled, TargetRegistration},
		{"", TargetRegistration},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			got := Resolve("2025-06-01", domain.SlotSummary{ID: "S1", Date: "2025-06-01", Status: tt.status})
			assert.Equal(t, tt.want, got.Target)
			assert.Equal(t, "2025-06-01", got.Date)
		})
	}
}

func TestResolve_CarriesSlotIDOnlyWhenSlotExists(t *testing.T) {
	got := Resolve("2025-06-01", domain.SlotSummary{Date: "2025-06-01", Status: domain.SlotStatusUnknown})
	assert.Empty(t, got.SlotID)

	got = Resolve("2025-06-01", domain.SlotSummary{ID: "S1", Date: "2025-06-01", Status: domain.SlotStatusRecruiting})
	assert.Equal(t, "S1", got.SlotID)

	got = Resolve("2025-06-01", domain.SlotSummary{ID: "S2", Date: "2025-06-01", Status: domain.SlotStatusClosed})
	assert.Equal(t, TargetRegistration, got.Target)
	assert.Equal(t, "S2", got.SlotID)
}

func TestRoute_Path(t *testing.T) {
	assert.Equal(t, "/recruiting?calendarId=S1&date=2025-06-01",
		Route{Target: TargetLifecycle, Date: "2025-06-01", SlotID: "S1"}.Path())
	assert.Equal(t, "/register?date=2025-06-01",
		Route{Target: TargetRegistration, Date: "2025-06-01"}.Path())
	assert.Equal(t, "/signin", Route{Target: TargetSignIn}.Path())
}

func TestNavigator_SignOutUsesInjectedCapability(t *testing.T) {
	called := false
	n := NewNavigator(func(context.Context) error {
		called = true
		return nil
	})

	route, err := n.SignOut(context.Background())

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, TargetSignIn, route.Target)
}

func TestNavigator_SignOutFailure(t *testing.T) {
	n := NewNavigator(func(context.Context) error { return errors.New("idp down") })

	_, err := n.SignOut(context.Background())

	assert.Error(t, err)
}

func TestNavigator_ResolveDelegates(t *testing.T) {
	n := NewNavigator(nil)

	got := n.Resolve("2025-06-01", domain.SlotSummary{ID: "9", Status: domain.SlotStatusMatched})

	assert.Equal(t, Route{Target: TargetProposal, Date: "2025-06-01", SlotID: "9"}, got)
}
