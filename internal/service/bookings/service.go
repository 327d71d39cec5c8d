package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TMS-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/TMS-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/TMS-BookingService/internal/service/bookings/models"
)

// Service сервис для чтения бронирований репетитора
type Service struct {
	bookingRepo   BookingRepository
	profileClient ProfileServiceClient
	logger        Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	profileClient ProfileServiceClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		profileClient: profileClient,
		logger:        logger,
	}
}

// GetTutorBookings возвращает бронирования репетитора (date DESC, start_time DESC,
// не более 50), обогащённые данными студентов из ProfileService.
// Недоступность профиля отдельного студента не валит весь список - вместо
// данных подставляется заглушка "Unknown Student"
func (s *Service) GetTutorBookings(ctx context.Context, req *models.GetTutorBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetTutorBookings: fetching bookings for tutor=%d", req.TutorID)

	if req.TutorID <= 0 {
		return nil, fmt.Errorf("%w: tutorID must be positive", ErrInvalidInput)
	}

	// Лимит выдачи никогда не превышает дефолтные 50 записей
	limit := req.Limit
	if limit <= 0 || limit > domain.DefaultBookingsListLimit {
		limit = domain.DefaultBookingsListLimit
	}

	filter := domain.TutorBookingsFilter{
		TutorID: req.TutorID,
		Limit:   limit,
	}

	list, err := s.bookingRepo.GetByTutorWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetTutorBookings: repository error for tutor=%d: %v", req.TutorID, err)
		return nil, fmt.Errorf("%w: GetTutorBookings - repository error: %v", ErrInternal, err)
	}

	// Обогащаем брони проекциями студентов; профили кэшируем в рамках запроса,
	// чтобы не ходить в ProfileService за одним студентом дважды
	students := make(map[int64]models.StudentInfo, len(list))
	enriched := make([]models.BookingResponse, 0, len(list))

	for _, b := range list {
		student, ok := students[b.StudentID]
		if !ok {
			student = s.fetchStudent(ctx, b.StudentID)
			students[b.StudentID] = student
		}
		enriched = append(enriched, models.FromDomainBooking(b, student))
	}

	s.logger.Info("GetTutorBookings: successfully fetched %d bookings for tutor=%d", len(enriched), req.TutorID)
	return &models.BookingListResponse{Bookings: enriched}, nil
}

// GetByID получает бронирование по ID
// Доступно только участникам брони - студенту или репетитору
func (s *Service) GetByID(ctx context.Context, id string, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%d", id, userID)

	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if b.StudentID != userID && b.TutorID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%s", userID, id)
		return nil, ErrAccessDenied
	}

	student := s.fetchStudent(ctx, b.StudentID)
	resp := models.FromDomainBooking(b, student)

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return &resp, nil
}

// fetchStudent получает проекцию студента с fallback'ом на заглушку
func (s *Service) fetchStudent(ctx context.Context, studentID int64) models.StudentInfo {
	meta, err := s.profileClient.GetUserMeta(ctx, studentID)
	if err != nil {
		s.logger.Warn("fetchStudent: could not fetch profile for student=%d: %v", studentID, err)
		return models.UnknownStudent()
	}
	return models.StudentFromUserMeta(meta)
}
