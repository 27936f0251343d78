package matching

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func TestGroupSizes(t *testing.T) {
	tests := []struct {
		name               string
		in                 CalendarDetail
		wantOwner, wantAll int
	}{
		{"attendees only", CalendarDetail{Attendees: intp(3)}, 3, 3},
		{"attendees and count", CalendarDetail{Attendees: intp(2), Count: intp(5)}, 2, 5},
		{"count below attendees keeps owner party", CalendarDetail{Attendees: intp(3), Count: intp(0)}, 3, 3},
		{"legacy capacity", CalendarDetail{Capacity: intp(4)}, 4, 4},
		{"count only", CalendarDetail{Count: intp(6)}, 6, 6},
		{"nothing", CalendarDetail{}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, total := groupSizes(tt.in)
			assert.Equal(t, tt.wantOwner, owner)
			assert.Equal(t, tt.wantAll, total)
		})
	}
}

func TestID_UnmarshalJSON(t *testing.T) {
	var v struct {
		A ID `json:"a"`
		B ID `json:"b"`
		C ID `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"x1","b":42,"c":null}`), &v))
	assert.Equal(t, ID("x1"), v.A)
	assert.Equal(t, ID("42"), v.B)
	assert.Equal(t, ID(""), v.C)

	assert.Error(t, json.Unmarshal([]byte(`{"a":true}`), &v))
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "2025-06-01", normalizeDate("2025-06-01"))
	assert.Equal(t, "2025-06-01", normalizeDate("2025-06-01T09:00:00+09:00"))
	assert.Equal(t, "June 1st, 2025", normalizeDate("June 1st, 2025"))
}
