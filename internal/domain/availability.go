package domain

import (
	"time"

	"github.com/m04kA/TMS-BookingService/pkg/types"
)

// DayMode represents the teaching format of a tutor's day
type DayMode string

const (
	ModeOnline  DayMode = "online"
	ModeOffline DayMode = "offline"
	ModeHybrid  DayMode = "hybrid"
	ModeHalf    DayMode = "half"
	ModeClose   DayMode = "close"
)

// IsValid returns true if the mode is one of the known day modes
func (m DayMode) IsValid() bool {
	switch m {
	case ModeOnline, ModeOffline, ModeHybrid, ModeHalf, ModeClose:
		return true
	default:
		return false
	}
}

// SlotType represents the session format of a single slot
type SlotType string

const (
	SlotTypeOnline  SlotType = "online"
	SlotTypeOffline SlotType = "offline"
)

// IsValid returns true if the type is one of the known slot types
func (t SlotType) IsValid() bool {
	return t == SlotTypeOnline || t == SlotTypeOffline
}

// TemplateSlot is a single slot preference inside a weekly template day
type TemplateSlot struct {
	Start types.TimeString `json:"start"`
	Type  SlotType         `json:"type"`
}

// WeeklyTemplateDay is one day-of-week entry of a tutor's recurring template.
// The template itself is never persisted - only its materialized projections are.
type WeeklyTemplateDay struct {
	DayOfWeek string         `json:"dayOfWeek"` // "monday".."sunday"
	Mode      DayMode        `json:"mode"`
	Slots     []TemplateSlot `json:"slots"`
}

// Slot is a single bookable time offering inside a dated inventory
type Slot struct {
	Start  types.TimeString  `json:"start"`
	Type   SlotType          `json:"type"`
	Booked bool              `json:"booked"`
	End    *types.TimeString `json:"end,omitempty"` // set when the slot is booked
}

// SameOffering returns true if other offers the same (start, type) pair.
// This pair is the slot identity used by the reconcile merge and by bookings.
func (s *Slot) SameOffering(other Slot) bool {
	return s.Start == other.Start && s.Type == other.Type
}

// DayInventory is the materialized set of slots for one tutor on one calendar
// date. Unique on (TutorID, Date). Invariants: len(Slots) <= MaxSlots(Mode),
// Mode == close implies Slots is empty.
type DayInventory struct {
	ID        int64
	TutorID   int64
	Date      time.Time // date only, time part is zero
	DayOfWeek string
	Mode      DayMode
	Slots     []Slot
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FindSlot returns the index of the slot with the exact (start, type) pair,
// or -1 if no such slot exists
func (inv *DayInventory) FindSlot(start types.TimeString, slotType SlotType) int {
	for i := range inv.Slots {
		if inv.Slots[i].Start == start && inv.Slots[i].Type == slotType {
			return i
		}
	}
	return -1
}

// HasBookedSlots returns true if at least one slot in the inventory is booked
func (inv *DayInventory) HasBookedSlots() bool {
	for i := range inv.Slots {
		if inv.Slots[i].Booked {
			return true
		}
	}
	return false
}
