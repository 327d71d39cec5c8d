package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TMS-BookingService/internal/domain"
	inventoryRepo "github.com/m04kA/TMS-BookingService/internal/infra/storage/availability"
)

// UseCase use case бронирования слота
//
// Claim слота и запись бронирования выполняются в одной сериализуемой
// транзакции: чтение инвентаря блокирует строку (FOR UPDATE), поэтому из
// N одновременных запросов на один слот ровно один фиксируется, остальные
// после снятия блокировки видят слот занятым и получают конфликт.
// Осиротевших броней (слот занят, записи нет) при этом не возникает
type UseCase struct {
	inventoryRepo InventoryRepository
	bookingRepo   BookingRepository
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	inventoryRepo InventoryRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		inventoryRepo: inventoryRepo,
		bookingRepo:   bookingRepo,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case бронирования слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: student=%d, tutor=%d, date=%s, time=%s, type=%s",
		req.StudentID, req.TutorID, req.Date.Format(domain.DateFormat), req.StartTime, req.Type)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Парсим время начала (24ч, затем 12ч fallback) и нормализуем к HH:MM
	startTime, err := parseStartTime(req.StartTime)
	if err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	// 3. Рассчитываем время окончания по политике длительности сессии
	duration := domain.SessionDurationMinutes(req.Type)
	endTime, err := startTime.AddMinutes(duration)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to calculate end time: %v", err)
		return nil, fmt.Errorf("%w: failed to calculate end time: %v", ErrInternal, err)
	}

	var result *domain.Booking

	// 4. Claim слота и запись брони в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Загружаем инвентарь на дату с блокировкой строки (FOR UPDATE)
		inv, err := uc.inventoryRepo.GetByTutorAndDate(txCtx, req.TutorID, req.Date)
		if err != nil {
			if errors.Is(err, inventoryRepo.ErrInventoryNotFound) {
				return ErrNoAvailability
			}
			return fmt.Errorf("%w: failed to get inventory: %v", ErrInternal, err)
		}

		// 4.2. Ищем слот по точному совпадению (start, type)
		idx := inv.FindSlot(startTime, req.Type)
		if idx == -1 {
			return ErrSlotNotFound
		}

		// 4.3. Проверяем, что слот свободен
		if inv.Slots[idx].Booked {
			return ErrSlotAlreadyBooked
		}

		// 4.4. Помечаем слот занятым и перезаписываем массив слотов
		inv.Slots[idx].Booked = true
		inv.Slots[idx].End = &endTime

		if err := uc.inventoryRepo.UpdateSlots(txCtx, inv.ID, inv.Slots); err != nil {
			return fmt.Errorf("%w: failed to update slots: %v", ErrInternal, err)
		}

		// 4.5. Создаем запись бронирования в той же транзакции
		booking := &domain.Booking{
			StudentID: req.StudentID,
			TutorID:   req.TutorID,
			Date:      req.Date,
			StartTime: startTime,
			EndTime:   endTime,
			Type:      req.Type,
			Status:    domain.StatusConfirmed,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s (student=%d, tutor=%d, %s %s-%s)",
		result.ID, result.StudentID, result.TutorID,
		result.Date.Format(domain.DateFormat), result.StartTime, result.EndTime)

	return &Response{
		ID:        result.ID,
		StudentID: result.StudentID,
		TutorID:   result.TutorID,
		Date:      result.Date,
		StartTime: result.StartTime,
		EndTime:   result.EndTime,
		Type:      result.Type,
		Status:    string(result.Status),
		CreatedAt: result.CreatedAt,
	}, nil
}
