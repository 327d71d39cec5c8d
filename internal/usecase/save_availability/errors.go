package save_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("save_availability: invalid input data")

	// ErrCapacityExceeded возвращается, когда день шаблона содержит больше
	// слотов, чем позволяет его режим
	ErrCapacityExceeded = errors.New("save_availability: slot count exceeds day mode capacity")

	// ErrTypeNotAllowed возвращается, когда тип слота недопустим для режима дня
	ErrTypeNotAllowed = errors.New("save_availability: slot type is not allowed for day mode")

	// ErrDuplicateSlot возвращается, когда день шаблона содержит два слота
	// с одинаковой парой (start, type)
	ErrDuplicateSlot = errors.New("save_availability: duplicate slot in template day")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("save_availability: internal error")
)
