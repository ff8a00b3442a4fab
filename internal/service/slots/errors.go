package slots

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slot not found")

	// ErrSlotInUse возвращается при попытке удалить слот с активными записями
	ErrSlotInUse = errors.New("slot has active bookings")

	// ErrDateBlocked возвращается при генерации слотов на заблокированную дату
	ErrDateBlocked = errors.New("date is blocked")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
