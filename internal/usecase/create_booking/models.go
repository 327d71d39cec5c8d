package create_booking

import (
	"time"

	"github.com/m04kA/TMS-BookingService/internal/domain"
	"github.com/m04kA/TMS-BookingService/pkg/types"
)

// Request модель запроса на бронирование слота
type Request struct {
	StudentID int64           // ID студента (из доверенных заголовков)
	TutorID   int64           // ID репетитора
	Date      time.Time       // Дата бронирования (без времени)
	StartTime string          // Время начала как пришло с клиента ("10:00" или "10:00 AM")
	Type      domain.SlotType // Тип слота (online/offline)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        string           // ID созданного бронирования
	StudentID int64            // ID студента
	TutorID   int64            // ID репетитора
	Date      time.Time        // Дата бронирования
	StartTime types.TimeString // Время начала (нормализовано к HH:MM)
	EndTime   types.TimeString // Рассчитанное время окончания
	Type      domain.SlotType  // Тип слота
	Status    string           // Статус бронирования
	CreatedAt time.Time        // Время создания
}
