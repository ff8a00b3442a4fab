package cancel_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда запись не найдена
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrInvalidTransition возвращается при отмене завершенной или уже отмененной записи
	ErrInvalidTransition = errors.New("cancel_booking: only current bookings can be cancelled")

	// ErrAccessDenied возвращается, когда клиент отменяет чужую запись
	ErrAccessDenied = errors.New("cancel_booking: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
