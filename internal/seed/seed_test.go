package seed

import (
	"testing"

	"github.com/stpnv0/SlotMatcher/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadStore(t *testing.T) *Store {
	t.Helper()
	s, err := Load()
	require.NoError(t, err)
	return s
}

func TestLoad_BundledDatasetParses(t *testing.T) {
	s := loadStore(t)

	assert.NotEmpty(t, s.calendars)
	assert.NotEmpty(t, s.groups)
	assert.NotEmpty(t, s.venues)
}

func TestSlotsByUser(t *testing.T) {
	s := loadStore(t)

	got := s.SlotsByUser("1")

	require.Len(t, got, 4)
	assert.Equal(t, domain.SlotSummary{ID: "1", Date: "2025-06-05", Status: domain.SlotStatusRecruiting}, got[0])
	for _, sum := range got {
		assert.NotEqual(t, "4", sum.ID, "user 2's slot leaked into user 1's list")
	}

	assert.Empty(t, s.SlotsByUser("nobody"))
	assert.NotNil(t, s.SlotsByUser("nobody"))
}

func TestSlotDetail_JoinsGroupVenue(t *testing.T) {
	s := loadStore(t)

	got, err := s.SlotDetail("1", "99")

	require.NoError(t, err)
	assert.Equal(t, "99", got.ID)
	assert.Equal(t, domain.SourceSeed, got.Source)
	assert.Equal(t, domain.SlotStatusMatched, got.Status)
	assert.Equal(t, 2, got.OwnerGroupSize)
	assert.Equal(t, 2, got.TotalParticipants)
	assert.Equal(t, DefaultMinCapacity, got.MinCapacity)
	assert.Equal(t, DefaultMaxCapacity, got.MaxCapacity)
	require.Len(t, got.Venues, 1)
	assert.Equal(t, "Strategy Lounge Meeple", got.Venues[0].Name)
	assert.Equal(t, "3-5-8 Shinjuku, Tokyo", got.Venues[0].Address)
}

func TestSlotDetail_GroupWithoutAddressGetsDefault(t *testing.T) {
	s := loadStore(t)

	got, err := s.SlotDetail("2", "4")

	require.NoError(t, err)
	require.Len(t, got.Venues, 1)
	assert.Equal(t, DefaultAddress, got.Venues[0].Address)
}

func TestSlotDetail_NoGroup(t *testing.T) {
	s := loadStore(t)

	got, err := s.SlotDetail("1", "3")

	require.NoError(t, err)
	assert.Empty(t, got.Venues)
	assert.Equal(t, domain.SlotStatusClosed, got.Status)
}

func TestSlotDetail_NotFound(t *testing.T) {
	s := loadStore(t)

	_, err := s.SlotDetail("1", "does-not-exist")

	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
}

func TestVenuesByCategory(t *testing.T) {
	s := loadStore(t)

	got := s.VenuesByCategory("board games")

	require.Len(t, got, 2)
	assert.Equal(t, "Board Game Cafe Dice", got[0].Name)
	require.NotNil(t, got[0].Rating)
	assert.InDelta(t, 4.5, *got[0].Rating, 0.001)
	assert.Empty(t, s.VenuesByCategory("chess"))
}

func TestParse_FirstGroupWinsOnDuplicateID(t *testing.T) {
	s, err := Parse([]byte(`
calendars:
  - {id: "a", user_id: "u", group_id: "g", date: "2025-01-01", attendees: 1, status: recruiting}
groups:
  - {id: "g", location: "first"}
  - {id: "g", location: "second"}
`))
	require.NoError(t, err)

	got, err := s.SlotDetail("u", "a")

	require.NoError(t, err)
	require.Len(t, got.Venues, 1)
	assert.Equal(t, "first", got.Venues[0].Name)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("calendars: [unterminated"))
	assert.Error(t, err)
}
