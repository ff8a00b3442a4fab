package reviews

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrReviewNotFound возвращается, когда отзыв не найден
	ErrReviewNotFound = errors.New("review not found")

	// ErrAccessDenied возвращается, когда клиент оценивает чужое бронирование
	ErrAccessDenied = errors.New("access denied")

	// ErrNotCompleted возвращается при попытке оценить незавершенное бронирование
	ErrNotCompleted = errors.New("booking is not completed yet")

	// ErrAlreadyReviewed возвращается при повторном отзыве на то же бронирование
	ErrAlreadyReviewed = errors.New("booking already reviewed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
