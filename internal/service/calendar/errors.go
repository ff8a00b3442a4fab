package calendar

import "errors"

var (
	// ErrInvalidMonth возвращается при некорректной паре год/месяц
	ErrInvalidMonth = errors.New("invalid year or month")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
