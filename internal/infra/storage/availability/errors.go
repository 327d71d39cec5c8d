package availability

import "errors"

var (
	// ErrInventoryNotFound возвращается, когда инвентарь слотов на дату не найден
	ErrInventoryNotFound = errors.New("availability.repository: inventory not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability.repository: failed to scan row")

	// ErrEncodeSlots возвращается при ошибке сериализации слотов в JSON
	ErrEncodeSlots = errors.New("availability.repository: failed to encode slots")

	// ErrDecodeSlots возвращается при ошибке десериализации слотов из JSON
	ErrDecodeSlots = errors.New("availability.repository: failed to decode slots")
)
