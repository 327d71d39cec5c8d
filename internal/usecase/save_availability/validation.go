package save_availability

import (
	"fmt"

	"github.com/m04kA/TMS-BookingService/internal/domain"
)

// validateRequest валидирует недельный шаблон целиком
// Политика вместимости и типов применяется на сервере: шаблон, нарушающий
// её, отклоняется до записи чего-либо в хранилище
func validateRequest(req *Request) error {
	if req.TutorID <= 0 {
		return fmt.Errorf("%w: tutorID must be positive", ErrInvalidInput)
	}

	if len(req.Schedule) == 0 {
		return fmt.Errorf("%w: schedule is required", ErrInvalidInput)
	}

	if len(req.Schedule) > domain.MaterializationHorizonDays {
		return fmt.Errorf("%w: schedule has %d days, at most %d allowed",
			ErrInvalidInput, len(req.Schedule), domain.MaterializationHorizonDays)
	}

	seenDays := make(map[string]bool, len(req.Schedule))

	for i := range req.Schedule {
		day := &req.Schedule[i]

		if !domain.IsValidWeekday(day.DayOfWeek) {
			return fmt.Errorf("%w: unknown day of week %q", ErrInvalidInput, day.DayOfWeek)
		}
		if seenDays[day.DayOfWeek] {
			return fmt.Errorf("%w: day %q appears twice in schedule", ErrInvalidInput, day.DayOfWeek)
		}
		seenDays[day.DayOfWeek] = true

		if !day.Mode.IsValid() {
			return fmt.Errorf("%w: unknown day mode %q", ErrInvalidInput, day.Mode)
		}

		if err := validateTemplateDay(day); err != nil {
			return err
		}
	}

	return nil
}

// validateTemplateDay применяет политику вместимости и типов к одному дню
// Для режима close слоты не проверяются: они отбрасываются при материализации
func validateTemplateDay(day *domain.WeeklyTemplateDay) error {
	if day.Mode == domain.ModeClose {
		return nil
	}

	if maxSlots := domain.MaxSlots(day.Mode); len(day.Slots) > maxSlots {
		return fmt.Errorf("%w: day %q has %d slots, mode %q allows at most %d",
			ErrCapacityExceeded, day.DayOfWeek, len(day.Slots), day.Mode, maxSlots)
	}

	seenSlots := make(map[domain.TemplateSlot]bool, len(day.Slots))

	for _, slot := range day.Slots {
		if err := slot.Start.Validate(); err != nil {
			return fmt.Errorf("%w: day %q: invalid slot start: %v", ErrInvalidInput, day.DayOfWeek, err)
		}

		if !slot.Type.IsValid() {
			return fmt.Errorf("%w: day %q: unknown slot type %q", ErrInvalidInput, day.DayOfWeek, slot.Type)
		}

		if !domain.IsTypeAllowed(day.Mode, slot.Type) {
			return fmt.Errorf("%w: day %q: type %q is not allowed in mode %q",
				ErrTypeNotAllowed, day.DayOfWeek, slot.Type, day.Mode)
		}

		if seenSlots[slot] {
			return fmt.Errorf("%w: day %q: slot (%s, %s)",
				ErrDuplicateSlot, day.DayOfWeek, slot.Start, slot.Type)
		}
		seenSlots[slot] = true
	}

	return nil
}
