package availability

import (
	"context"

	"github.com/m04kA/TMS-BookingService/internal/domain"
	"github.com/m04kA/TMS-BookingService/internal/integrations/profileservice"
)

// InventoryRepository интерфейс репозитория инвентарей слотов
type InventoryRepository interface {
	ListByTutor(ctx context.Context, tutorID int64, limit int) ([]*domain.DayInventory, error)
}

// ProfileServiceClient интерфейс клиента для ProfileService
type ProfileServiceClient interface {
	GetUserMeta(ctx context.Context, userID int64) (*profileservice.UserMeta, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
