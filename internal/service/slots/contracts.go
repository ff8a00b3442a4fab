package slots

import (
	"context"
	"time"

	"github.com/easybook/EB-BookingService/internal/domain"
	"github.com/easybook/EB-BookingService/pkg/types"
)

// SlotRepository интерфейс репозитория временных слотов
type SlotRepository interface {
	Create(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error)
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.TimeSlot, error)
	GetAvailableByDate(ctx context.Context, date time.Time) ([]*domain.TimeSlot, error)
	ExistingStartTimes(ctx context.Context, date time.Time) (map[types.TimeString]struct{}, error)
	Delete(ctx context.Context, id int64) error
}

// BlockedDateRepository интерфейс репозитория заблокированных дат
type BlockedDateRepository interface {
	IsBlocked(ctx context.Context, date time.Time) (bool, error)
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
