package models

import (
	"github.com/m04kA/TMS-BookingService/internal/domain"
	"github.com/m04kA/TMS-BookingService/pkg/ptr"
)

// GetScheduleRequest запрос на получение расписания репетитора
type GetScheduleRequest struct {
	TutorID int64 // ID репетитора, чьё расписание запрашивается
}

// SlotResponse слот внутри инвентаря на дату
type SlotResponse struct {
	Start  string  `json:"start"`
	Type   string  `json:"type"`
	Booked bool    `json:"booked"`
	End    *string `json:"end,omitempty"`
}

// DayInventoryResponse инвентарь слотов на одну дату
type DayInventoryResponse struct {
	Date      string         `json:"date"`
	DayOfWeek string         `json:"dayOfWeek"`
	Mode      string         `json:"mode"`
	Slots     []SlotResponse `json:"slots"`
}

// ScheduleResponse расписание репетитора на горизонт материализации
type ScheduleResponse struct {
	Schedule      []DayInventoryResponse `json:"schedule"`
	EducationMode string                 `json:"educationMode"`
}

// FromDomainInventory конвертирует доменный инвентарь в response модель
func FromDomainInventory(inv *domain.DayInventory) DayInventoryResponse {
	slots := make([]SlotResponse, len(inv.Slots))
	for i, s := range inv.Slots {
		slots[i] = SlotResponse{
			Start:  s.Start.String(),
			Type:   string(s.Type),
			Booked: s.Booked,
		}
		if s.End != nil {
			slots[i].End = ptr.Ptr(s.End.String())
		}
	}

	return DayInventoryResponse{
		Date:      inv.Date.Format(domain.DateFormat),
		DayOfWeek: inv.DayOfWeek,
		Mode:      string(inv.Mode),
		Slots:     slots,
	}
}

// FromDomainInventoryList конвертирует список инвентарей в response модель
func FromDomainInventoryList(inventories []*domain.DayInventory, educationMode string) *ScheduleResponse {
	schedule := make([]DayInventoryResponse, len(inventories))
	for i, inv := range inventories {
		schedule[i] = FromDomainInventory(inv)
	}

	return &ScheduleResponse{
		Schedule:      schedule,
		EducationMode: educationMode,
	}
}
