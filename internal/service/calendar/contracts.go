package calendar

import (
	"context"
	"time"

	"github.com/easybook/EB-BookingService/internal/domain"
)

// BlockedDateRepository интерфейс репозитория заблокированных дат
type BlockedDateRepository interface {
	GetForRange(ctx context.Context, from, to time.Time) (map[string]struct{}, error)
}

// ShiftRepository интерфейс репозитория смен
type ShiftRepository interface {
	GetForEmployeeInRange(ctx context.Context, employeeID int64, from, to time.Time) ([]*domain.Shift, error)
}

// TimeProvider отдает текущее время; в тестах подменяется фиксированным
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
