package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/TMS-BookingService/internal/domain"
)

// InventoryRepository интерфейс репозитория инвентарей слотов
type InventoryRepository interface {
	GetByTutorAndDate(ctx context.Context, tutorID int64, date time.Time) (*domain.DayInventory, error)
	UpdateSlots(ctx context.Context, id int64, slots []domain.Slot) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
