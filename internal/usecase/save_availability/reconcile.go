package save_availability

import "github.com/m04kA/TMS-BookingService/internal/domain"

// ReconcileSlots сливает существующие слоты инвентаря с кандидатами из шаблона.
// Ключ слота - пара (start, type). Если существующий слот с тем же ключом
// забронирован, признак бронирования и рассчитанное время окончания переносятся
// на кандидата. Слоты, которых больше нет в шаблоне, отбрасываются вместе с их
// состоянием бронирования.
//
// Функция чистая: не модифицирует аргументы, возвращает новый слайс
func ReconcileSlots(existing []domain.Slot, candidates []domain.Slot) []domain.Slot {
	merged := make([]domain.Slot, len(candidates))

	for i, candidate := range candidates {
		merged[i] = candidate

		for _, old := range existing {
			if !old.SameOffering(candidate) {
				continue
			}
			if old.Booked {
				merged[i].Booked = true
				merged[i].End = old.End
			}
			break
		}
	}

	return merged
}

// buildCandidateSlots строит слоты инвентаря из дня шаблона
// Для режима close слоты отбрасываются независимо от содержимого шаблона
func buildCandidateSlots(day *domain.WeeklyTemplateDay) []domain.Slot {
	if day.Mode == domain.ModeClose {
		return []domain.Slot{}
	}

	slots := make([]domain.Slot, len(day.Slots))
	for i, ts := range day.Slots {
		slots[i] = domain.Slot{
			Start:  ts.Start,
			Type:   ts.Type,
			Booked: false,
		}
	}
	return slots
}
