package create_booking

import (
	"fmt"

	"github.com/m04kA/TMS-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StudentID <= 0 {
		return fmt.Errorf("%w: studentID must be positive", ErrInvalidInput)
	}

	if req.TutorID <= 0 {
		return fmt.Errorf("%w: tutorID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime == "" {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if !req.Type.IsValid() {
		return fmt.Errorf("%w: unknown slot type %q", ErrInvalidInput, req.Type)
	}

	return nil
}

// parseStartTime парсит время начала: сначала 24-часовой формат "HH:MM",
// затем 12-часовой "h:MM AM/PM". Результат нормализован к "HH:MM"
func parseStartTime(raw string) (types.TimeString, error) {
	startTime, err := types.ParseFlexible(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidStartTime, raw)
	}
	return startTime, nil
}
