package get_availability

import (
	"context"

	"github.com/m04kA/TMS-BookingService/internal/service/availability/models"
)

type AvailabilityService interface {
	GetSchedule(ctx context.Context, req *models.GetScheduleRequest) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
