package slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slot.repository: slot not found")

	// ErrSlotFull возвращается при попытке занять место в полностью занятом слоте
	ErrSlotFull = errors.New("slot.repository: slot is fully booked")

	// ErrCapacityViolation возвращается, когда счетчик мест ушел бы за границы [0, max_bookings]
	// Это сигнал внутренней ошибки: освобождение места в пустом слоте невозможно при корректной логике
	ErrCapacityViolation = errors.New("slot.repository: capacity counter invariant violation")

	// ErrSlotInUse возвращается при попытке удалить слот с живыми бронированиями
	ErrSlotInUse = errors.New("slot.repository: slot has active bookings")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slot.repository: failed to scan row")
)
