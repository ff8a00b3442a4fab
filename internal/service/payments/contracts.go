package payments

import (
	"context"

	"github.com/easybook/EB-BookingService/internal/domain"
)

// PaymentRepository интерфейс репозитория платежных транзакций
type PaymentRepository interface {
	ConfirmByReference(ctx context.Context, reference string) error
}

// ServiceTypeRepository интерфейс каталога услуг
type ServiceTypeRepository interface {
	List(ctx context.Context) ([]*domain.ServiceType, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
