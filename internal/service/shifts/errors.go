package shifts

import "errors"

var (
	// ErrShiftNotFound возвращается, когда смена не найдена
	ErrShiftNotFound = errors.New("shift not found")

	// ErrRequestNotFound возвращается, когда запрос на изменение смены не найден
	ErrRequestNotFound = errors.New("change request not found")

	// ErrAccessDenied возвращается, когда сотрудник меняет чужую смену
	ErrAccessDenied = errors.New("access denied")

	// ErrDateBlocked возвращается при назначении смены на заблокированную дату
	ErrDateBlocked = errors.New("date is blocked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
