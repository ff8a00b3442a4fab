package list_service_types

import (
	"context"

	"github.com/easybook/EB-BookingService/internal/domain"
)

type PaymentsService interface {
	ListServiceTypes(ctx context.Context) ([]*domain.ServiceType, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
