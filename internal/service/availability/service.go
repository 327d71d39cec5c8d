package availability

import (
	"context"
	"fmt"

	"github.com/m04kA/TMS-BookingService/internal/domain"
	"github.com/m04kA/TMS-BookingService/internal/service/availability/models"
)

// defaultEducationMode используется, когда профиль репетитора недоступен
// Отсутствующий профиль не должен блокировать показ расписания
const defaultEducationMode = string(domain.ModeHybrid)

// Service сервис чтения расписания репетитора
type Service struct {
	inventoryRepo InventoryRepository
	profileClient ProfileServiceClient
	logger        Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	inventoryRepo InventoryRepository,
	profileClient ProfileServiceClient,
	logger Logger,
) *Service {
	return &Service{
		inventoryRepo: inventoryRepo,
		profileClient: profileClient,
		logger:        logger,
	}
}

// GetSchedule возвращает инвентари репетитора (по возрастанию даты, до 7 штук)
// вместе с его общим режимом преподавания из профиля.
// Ошибка получения профиля деградирует до дефолтного режима hybrid
func (s *Service) GetSchedule(ctx context.Context, req *models.GetScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: fetching schedule for tutor=%d", req.TutorID)

	if req.TutorID <= 0 {
		return nil, fmt.Errorf("%w: tutorID must be positive", ErrInvalidInput)
	}

	educationMode := defaultEducationMode
	meta, err := s.profileClient.GetUserMeta(ctx, req.TutorID)
	if err != nil {
		s.logger.Warn("GetSchedule: could not fetch profile for tutor=%d, falling back to %s: %v",
			req.TutorID, defaultEducationMode, err)
	} else if meta.EducationMode != "" {
		educationMode = meta.EducationMode
	}

	inventories, err := s.inventoryRepo.ListByTutor(ctx, req.TutorID, domain.ScheduleDaysLimit)
	if err != nil {
		s.logger.Error("GetSchedule: repository error for tutor=%d: %v", req.TutorID, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSchedule: successfully fetched %d days for tutor=%d", len(inventories), req.TutorID)
	return models.FromDomainInventoryList(inventories, educationMode), nil
}
