package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxSlots(t *testing.T) {
	tests := []struct {
		mode DayMode
		want int
	}{
		{ModeOnline, FullDayMaxSlots},
		{ModeOffline, FullDayMaxSlots},
		{ModeHybrid, FullDayMaxSlots},
		{ModeHalf, HalfDayMaxSlots},
		{ModeClose, 0},
		{DayMode("unknown"), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			assert.Equal(t, tt.want, MaxSlots(tt.mode))
		})
	}
}

func TestAllowedTypes(t *testing.T) {
	assert.Equal(t, []SlotType{SlotTypeOnline}, AllowedTypes(ModeOnline))
	assert.Equal(t, []SlotType{SlotTypeOffline}, AllowedTypes(ModeOffline))
	assert.ElementsMatch(t, []SlotType{SlotTypeOnline, SlotTypeOffline}, AllowedTypes(ModeHybrid))
	assert.ElementsMatch(t, []SlotType{SlotTypeOnline, SlotTypeOffline}, AllowedTypes(ModeHalf))
	assert.Nil(t, AllowedTypes(ModeClose))
}

func TestIsTypeAllowed(t *testing.T) {
	tests := []struct {
		name     string
		mode     DayMode
		slotType SlotType
		want     bool
	}{
		{"online in online mode", ModeOnline, SlotTypeOnline, true},
		{"offline in online mode", ModeOnline, SlotTypeOffline, false},
		{"offline in offline mode", ModeOffline, SlotTypeOffline, true},
		{"online in offline mode", ModeOffline, SlotTypeOnline, false},
		{"online in hybrid mode", ModeHybrid, SlotTypeOnline, true},
		{"offline in hybrid mode", ModeHybrid, SlotTypeOffline, true},
		{"online in half mode", ModeHalf, SlotTypeOnline, true},
		{"offline in half mode", ModeHalf, SlotTypeOffline, true},
		{"online in close mode", ModeClose, SlotTypeOnline, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTypeAllowed(tt.mode, tt.slotType))
		})
	}
}

func TestSessionDurationMinutes(t *testing.T) {
	assert.Equal(t, OnlineSessionMinutes, SessionDurationMinutes(SlotTypeOnline))
	assert.Equal(t, OfflineSessionMinutes, SessionDurationMinutes(SlotTypeOffline))
	assert.Equal(t, 0, SessionDurationMinutes(SlotType("unknown")))
}
