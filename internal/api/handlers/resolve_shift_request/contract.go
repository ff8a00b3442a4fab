package resolve_shift_request

import "context"

type ShiftsService interface {
	ResolveRequest(ctx context.Context, requestID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
