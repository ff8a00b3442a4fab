package modify_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда запись не найдена
	ErrBookingNotFound = errors.New("modify_booking: booking not found")

	// ErrSlotNotFound возвращается, когда новый слот не найден
	ErrSlotNotFound = errors.New("modify_booking: slot not found")

	// ErrSlotFull возвращается, когда в новом слоте не осталось свободных мест
	ErrSlotFull = errors.New("modify_booking: slot is full")

	// ErrServiceTypeNotFound возвращается, когда новая услуга не найдена
	ErrServiceTypeNotFound = errors.New("modify_booking: service type not found")

	// ErrInvalidTransition возвращается при изменении завершенной или отмененной записи
	ErrInvalidTransition = errors.New("modify_booking: booking status does not allow modification")

	// ErrAccessDenied возвращается, когда клиент изменяет чужую запись
	ErrAccessDenied = errors.New("modify_booking: access denied")

	// ErrNothingToChange возвращается, когда запрос не содержит ни одного изменения
	ErrNothingToChange = errors.New("modify_booking: nothing to change")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("modify_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("modify_booking: internal error")
)
