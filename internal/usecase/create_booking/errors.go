package create_booking

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrSlotFull возвращается, когда в слоте не осталось свободных мест
	ErrSlotFull = errors.New("create_booking: slot is full")

	// ErrSlotInPast возвращается при попытке записаться на уже прошедший слот
	ErrSlotInPast = errors.New("create_booking: slot is in the past")

	// ErrServiceTypeNotFound возвращается, когда услуга не найдена
	ErrServiceTypeNotFound = errors.New("create_booking: service type not found")

	// ErrBookingLimitExceeded возвращается, когда у клиента уже максимум активных записей
	ErrBookingLimitExceeded = errors.New("create_booking: active booking limit exceeded")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
