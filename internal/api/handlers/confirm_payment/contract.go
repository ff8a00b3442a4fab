package confirm_payment

import "context"

type PaymentsService interface {
	Confirm(ctx context.Context, reference string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
