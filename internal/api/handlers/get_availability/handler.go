package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/TMS-BookingService/internal/api/handlers"
	"github.com/m04kA/TMS-BookingService/internal/api/middleware"
	"github.com/m04kA/TMS-BookingService/internal/service/availability"
	"github.com/m04kA/TMS-BookingService/internal/service/availability/models"
)

const (
	msgInvalidTutorID = "некорректный ID репетитора"
	msgMissingUserID  = "отсутствует идентификатор пользователя"
	msgTutorOnly      = "просмотр собственного расписания доступен только репетиторам"

	roleTutor = "tutor"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?tutorId={id}
//
// Без tutorId возвращает расписание самого вызывающего (только для репетиторов),
// с tutorId - расписание указанного репетитора (для любого авторизованного пользователя).
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /availability - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	tutorID := userID
	if tutorIDStr := r.URL.Query().Get("tutorId"); tutorIDStr != "" {
		parsed, err := strconv.ParseInt(tutorIDStr, 10, 64)
		if err != nil || parsed <= 0 {
			h.logger.Warn("GET /availability - Invalid tutor ID %q: user_id=%d", tutorIDStr, userID)
			handlers.RespondBadRequest(w, msgInvalidTutorID)
			return
		}
		tutorID = parsed
	} else {
		// Свой календарь есть только у репетитора
		if role, _ := middleware.GetUserRole(r.Context()); role != roleTutor {
			h.logger.Warn("GET /availability - Wrong role %q: user_id=%d", role, userID)
			handlers.RespondUnauthorized(w, msgTutorOnly)
			return
		}
	}

	result, err := h.service.GetSchedule(r.Context(), &models.GetScheduleRequest{TutorID: tutorID})
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid request: tutor_id=%d, error=%v", tutorID, err)
			handlers.RespondBadRequest(w, msgInvalidTutorID)

		default:
			h.logger.Error("GET /availability - Failed to get schedule: tutor_id=%d, error=%v", tutorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Schedule retrieved: tutor_id=%d, days=%d", tutorID, len(result.Schedule))
	handlers.RespondJSON(w, http.StatusOK, result)
}
