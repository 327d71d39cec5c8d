package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/TMS-BookingService/internal/api/handlers"
	"github.com/m04kA/TMS-BookingService/internal/api/middleware"
	createBooking "github.com/m04kA/TMS-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени начала"
	msgMissingUserID      = "отсутствует идентификатор пользователя"
	msgNoAvailability     = "у репетитора нет доступности на выбранную дату"
	msgSlotNotFound       = "выбранный слот не найден в расписании репетитора"
	msgSlotAlreadyBooked  = "выбранный слот уже забронирован"
	msgInvalidBooking     = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем studentID из контекста (через middleware Auth)
	studentID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest(studentID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: student_id=%d, error=%v", studentID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotAlreadyBooked):
			h.logger.Warn("POST /bookings - Slot already booked: student_id=%d, tutor_id=%d", studentID, req.TutorID)
			handlers.RespondConflict(w, msgSlotAlreadyBooked)

		case errors.Is(err, createBooking.ErrNoAvailability):
			h.logger.Warn("POST /bookings - No availability: student_id=%d, tutor_id=%d, date=%s",
				studentID, req.TutorID, req.Date)
			handlers.RespondNotFound(w, msgNoAvailability)

		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: student_id=%d, tutor_id=%d, start=%s, type=%s",
				studentID, req.TutorID, req.StartTime, req.Type)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createBooking.ErrInvalidStartTime):
			h.logger.Warn("POST /bookings - Invalid start time %q: student_id=%d", req.StartTime, studentID)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: student_id=%d, error=%v", studentID, err)
			handlers.RespondBadRequest(w, msgInvalidBooking)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: student_id=%d, tutor_id=%d, error=%v",
				studentID, req.TutorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, student_id=%d, tutor_id=%d",
		result.ID, studentID, req.TutorID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
