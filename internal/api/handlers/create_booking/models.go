package create_booking

import (
	"time"

	"github.com/m04kA/TMS-BookingService/internal/domain"
	createBooking "github.com/m04kA/TMS-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	TutorID   int64  `json:"tutorId"`
	Date      string `json:"date"`      // "2026-09-07"
	StartTime string `json:"startTime"` // "10:00" или "10:00 AM"
	Type      string `json:"type"`      // "online" | "offline"

	// Клиенты присылают эти поля, но сервер их игнорирует:
	// время окончания рассчитывается по политике длительности,
	// день недели выводится из даты
	EndTime   string `json:"endTime"`
	DayOfWeek string `json:"dayOfWeek"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Success   bool   `json:"success"`
	BookingID string `json:"bookingId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Время начала передаётся как есть - нормализацией занимается use case.
func (r *CreateBookingRequest) ToUseCaseRequest(studentID int64) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		StudentID: studentID,
		TutorID:   r.TutorID,
		Date:      bookingDate,
		StartTime: r.StartTime,
		Type:      domain.SlotType(r.Type),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Success:   true,
		BookingID: resp.ID,
		StartTime: resp.StartTime.String(),
		EndTime:   resp.EndTime.String(),
		Status:    resp.Status,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
