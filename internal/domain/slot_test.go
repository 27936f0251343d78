package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSlotStatus(t *testing.T) {
	tests := []struct {
		in   string
		want SlotStatus
	}{
		{"recruiting", SlotStatusRecruiting},
		{" Matched ", SlotStatusMatched},
		{"confirmed", SlotStatusMatched},
		{"canceled", SlotStatusCancelled},
		{"closed", SlotStatusClosed},
		{"", SlotStatusUnknown},
		{"pending", SlotStatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSlotStatus(tt.in))
		})
	}
}

func TestSlotStatus_Terminal(t *testing.T) {
	assert.False(t, SlotStatusRecruiting.Terminal())
	assert.False(t, SlotStatusUnknown.Terminal())
	assert.True(t, SlotStatusMatched.Terminal())
	assert.True(t, SlotStatusClosed.Terminal())
	assert.True(t, SlotStatusCancelled.Terminal())
}
