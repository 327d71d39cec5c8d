package save_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/TMS-BookingService/internal/api/handlers"
	"github.com/m04kA/TMS-BookingService/internal/api/middleware"
	saveAvailability "github.com/m04kA/TMS-BookingService/internal/usecase/save_availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM"
	msgMissingUserID      = "отсутствует идентификатор пользователя"
	msgTutorOnly          = "управление расписанием доступно только репетиторам"
	msgCapacityExceeded   = "количество слотов превышает лимит для выбранного режима дня"
	msgTypeNotAllowed     = "тип слота недопустим для выбранного режима дня"
	msgDuplicateSlot      = "день шаблона содержит повторяющийся слот"
	msgInvalidSchedule    = "некорректное недельное расписание"

	roleTutor = "tutor"
)

type Handler struct {
	useCase SaveAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase SaveAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	tutorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /availability - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Расписание может менять только репетитор
	if role, _ := middleware.GetUserRole(r.Context()); role != roleTutor {
		h.logger.Warn("POST /availability - Wrong role %q: user_id=%d", role, tutorID)
		handlers.RespondUnauthorized(w, msgTutorOnly)
		return
	}

	var req SaveAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом времён)
	useCaseReq, err := req.ToUseCaseRequest(tutorID)
	if err != nil {
		h.logger.Warn("POST /availability - Failed to parse request: tutor_id=%d, error=%v", tutorID, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, saveAvailability.ErrCapacityExceeded):
			h.logger.Warn("POST /availability - Capacity exceeded: tutor_id=%d", tutorID)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, saveAvailability.ErrTypeNotAllowed):
			h.logger.Warn("POST /availability - Slot type not allowed: tutor_id=%d", tutorID)
			handlers.RespondBadRequest(w, msgTypeNotAllowed)

		case errors.Is(err, saveAvailability.ErrDuplicateSlot):
			h.logger.Warn("POST /availability - Duplicate slot: tutor_id=%d", tutorID)
			handlers.RespondBadRequest(w, msgDuplicateSlot)

		case errors.Is(err, saveAvailability.ErrInvalidInput):
			h.logger.Warn("POST /availability - Invalid schedule: tutor_id=%d, error=%v", tutorID, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		default:
			h.logger.Error("POST /availability - Failed to save availability: tutor_id=%d, error=%v", tutorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability - Availability saved: tutor_id=%d, days=%d", tutorID, result.Saved)
	handlers.RespondJSON(w, http.StatusOK, SaveAvailabilityResponse{
		Success: true,
		Saved:   result.Saved,
	})
}
