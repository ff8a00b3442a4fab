package sweep_statuses

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("sweep_statuses: internal error")
)
