package get_tutor_bookings

import (
	"net/http"
	"strconv"

	"github.com/m04kA/TMS-BookingService/internal/api/handlers"
	"github.com/m04kA/TMS-BookingService/internal/api/middleware"
	"github.com/m04kA/TMS-BookingService/internal/service/bookings/models"
)

const (
	msgMissingUserID = "отсутствует идентификатор пользователя"
	msgTutorOnly     = "список бронирований доступен только репетиторам"
	msgInvalidLimit  = "некорректный параметр limit"

	roleTutor = "tutor"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?limit={n}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tutorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Список своих бронирований видит только репетитор
	if role, _ := middleware.GetUserRole(r.Context()); role != roleTutor {
		h.logger.Warn("GET /bookings - Wrong role %q: user_id=%d", role, tutorID)
		handlers.RespondUnauthorized(w, msgTutorOnly)
		return
	}

	// Получаем limit из query параметров (опционально)
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			h.logger.Warn("GET /bookings - Invalid limit %q: tutor_id=%d", limitStr, tutorID)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	result, err := h.service.GetTutorBookings(r.Context(), &models.GetTutorBookingsRequest{
		TutorID: tutorID,
		Limit:   limit,
	})
	if err != nil {
		h.logger.Error("GET /bookings - Failed to get bookings: tutor_id=%d, error=%v", tutorID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: tutor_id=%d, count=%d",
		tutorID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
