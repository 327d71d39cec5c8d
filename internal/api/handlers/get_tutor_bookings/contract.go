package get_tutor_bookings

import (
	"context"

	"github.com/m04kA/TMS-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetTutorBookings(ctx context.Context, req *models.GetTutorBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
