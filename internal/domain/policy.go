package domain

// MaxSlots returns the maximum number of slots a day may carry in the given mode
func MaxSlots(mode DayMode) int {
	switch mode {
	case ModeClose:
		return 0
	case ModeHalf:
		return HalfDayMaxSlots
	case ModeOnline, ModeOffline, ModeHybrid:
		return FullDayMaxSlots
	default:
		return 0
	}
}

// AllowedTypes returns the slot types permitted in the given mode
func AllowedTypes(mode DayMode) []SlotType {
	switch mode {
	case ModeClose:
		return nil
	case ModeOnline:
		return []SlotType{SlotTypeOnline}
	case ModeOffline:
		return []SlotType{SlotTypeOffline}
	case ModeHalf, ModeHybrid:
		return []SlotType{SlotTypeOnline, SlotTypeOffline}
	default:
		return nil
	}
}

// IsTypeAllowed returns true if the slot type is permitted in the given mode
func IsTypeAllowed(mode DayMode, slotType SlotType) bool {
	for _, t := range AllowedTypes(mode) {
		if t == slotType {
			return true
		}
	}
	return false
}

// SessionDurationMinutes returns the fixed session length for the slot type
func SessionDurationMinutes(slotType SlotType) int {
	switch slotType {
	case SlotTypeOnline:
		return OnlineSessionMinutes
	case SlotTypeOffline:
		return OfflineSessionMinutes
	default:
		return 0
	}
}
