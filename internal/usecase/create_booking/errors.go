package create_booking

import "errors"

var (
	// ErrNoAvailability возвращается, когда у репетитора нет инвентаря на дату
	ErrNoAvailability = errors.New("create_booking: tutor has no availability for this date")

	// ErrSlotNotFound возвращается, когда слот с парой (start, type) отсутствует в инвентаре
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrSlotAlreadyBooked возвращается, когда слот уже забронирован
	ErrSlotAlreadyBooked = errors.New("create_booking: slot already booked")

	// ErrInvalidStartTime возвращается, когда время начала не парсится
	// ни как 24-часовое "HH:MM", ни как 12-часовое "h:MM AM/PM"
	ErrInvalidStartTime = errors.New("create_booking: invalid start time format")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
