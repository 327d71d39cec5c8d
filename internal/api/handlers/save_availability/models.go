package save_availability

import (
	"fmt"

	"github.com/m04kA/TMS-BookingService/internal/domain"
	saveAvailability "github.com/m04kA/TMS-BookingService/internal/usecase/save_availability"
	"github.com/m04kA/TMS-BookingService/pkg/types"
)

// TemplateSlotRequest слот недельного шаблона в HTTP запросе
type TemplateSlotRequest struct {
	Start string `json:"start"` // "09:00"
	Type  string `json:"type"`  // "online" | "offline"
}

// TemplateDayRequest день недельного шаблона в HTTP запросе
type TemplateDayRequest struct {
	DayOfWeek string                `json:"dayOfWeek"` // "monday" ... "sunday"
	Mode      string                `json:"mode"`      // "online" | "offline" | "hybrid" | "half" | "close"
	Slots     []TemplateSlotRequest `json:"slots"`
}

// SaveAvailabilityRequest HTTP request model
type SaveAvailabilityRequest struct {
	Schedule []TemplateDayRequest `json:"schedule"`
}

// SaveAvailabilityResponse HTTP response model
type SaveAvailabilityResponse struct {
	Success bool `json:"success"`
	Saved   int  `json:"saved"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SaveAvailabilityRequest) ToUseCaseRequest(tutorID int64) (*saveAvailability.Request, error) {
	schedule := make([]domain.WeeklyTemplateDay, 0, len(r.Schedule))
	for _, day := range r.Schedule {
		slots := make([]domain.TemplateSlot, 0, len(day.Slots))
		for _, slot := range day.Slots {
			start, err := types.NewTimeStringFromString(slot.Start)
			if err != nil {
				return nil, fmt.Errorf("day %q: %w", day.DayOfWeek, err)
			}
			slots = append(slots, domain.TemplateSlot{
				Start: start,
				Type:  domain.SlotType(slot.Type),
			})
		}
		schedule = append(schedule, domain.WeeklyTemplateDay{
			DayOfWeek: day.DayOfWeek,
			Mode:      domain.DayMode(day.Mode),
			Slots:     slots,
		})
	}

	return &saveAvailability.Request{
		TutorID:  tutorID,
		Schedule: schedule,
	}, nil
}
