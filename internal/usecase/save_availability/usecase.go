package save_availability

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/TMS-BookingService/internal/domain"
	inventoryRepo "github.com/m04kA/TMS-BookingService/internal/infra/storage/availability"
)

// UseCase use case материализации недельного шаблона в инвентари на даты
//
// Шаблон разворачивается на 7 дат, начиная с сегодняшней. Каждая дата
// обрабатывается в собственной транзакции: частичный сбой оставляет уже
// обработанные даты записанными, повторный вызов с тем же шаблоном
// идемпотентен и лишь подтверждает уже корректное состояние
type UseCase struct {
	inventoryRepo InventoryRepository
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	inventoryRepo InventoryRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		inventoryRepo: inventoryRepo,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case сохранения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SaveAvailability: tutor=%d, template_days=%d", req.TutorID, len(req.Schedule))

	// 1. Валидация шаблона и применение политики вместимости/типов
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SaveAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем опорную дату (сегодня)
	now := uc.timeProvider.Now()
	referenceDate := truncateToDate(now)

	saved := 0

	// 3. Материализуем каждую из 7 дат горизонта независимо
	for i := 0; i < domain.MaterializationHorizonDays; i++ {
		date := referenceDate.AddDate(0, 0, i)
		dayName := weekdayName(date)

		// 3.1. Ищем день шаблона для этой даты недели; нет дня - дата не трогается
		templateDay := findTemplateDay(req.Schedule, dayName)
		if templateDay == nil {
			continue
		}

		// 3.2. Строим слоты-кандидаты (для close слоты отбрасываются)
		candidates := buildCandidateSlots(templateDay)

		// 3.3. Согласуем с существующим инвентарём и перезаписываем документ
		err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			existing, err := uc.inventoryRepo.GetByTutorAndDate(txCtx, req.TutorID, date)
			if err != nil && !errors.Is(err, inventoryRepo.ErrInventoryNotFound) {
				return fmt.Errorf("%w: failed to get inventory: %v", ErrInternal, err)
			}

			slots := candidates
			if existing != nil {
				// Переносим признак бронирования на совпавшие слоты
				slots = ReconcileSlots(existing.Slots, candidates)
			}

			inv := &domain.DayInventory{
				TutorID:   req.TutorID,
				Date:      date,
				DayOfWeek: dayName,
				Mode:      templateDay.Mode,
				Slots:     slots,
			}

			if _, err := uc.inventoryRepo.Upsert(txCtx, inv); err != nil {
				return fmt.Errorf("%w: failed to upsert inventory: %v", ErrInternal, err)
			}

			return nil
		})

		if err != nil {
			uc.logger.Error("SaveAvailability: failed to materialize date=%s for tutor=%d: %v",
				date.Format(domain.DateFormat), req.TutorID, err)
			return nil, err
		}

		saved++
	}

	uc.logger.Info("SaveAvailability: materialized %d dates for tutor=%d", saved, req.TutorID)

	return &Response{Saved: saved}, nil
}

// findTemplateDay ищет день шаблона по имени дня недели
func findTemplateDay(schedule []domain.WeeklyTemplateDay, dayName string) *domain.WeeklyTemplateDay {
	for i := range schedule {
		if schedule[i].DayOfWeek == dayName {
			return &schedule[i]
		}
	}
	return nil
}

// weekdayName возвращает имя дня недели в нижнем регистре ("monday".."sunday")
func weekdayName(date time.Time) string {
	return strings.ToLower(date.Weekday().String())
}

// truncateToDate обнуляет компонент времени
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
