package modify_booking

import (
	"context"

	"github.com/easybook/EB-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateSlotAndType(ctx context.Context, id, slotID, typeID int64) error
}

// SlotRepository интерфейс репозитория временных слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
	AdjustCapacity(ctx context.Context, id int64, delta int) error
}

// PaymentRepository интерфейс репозитория платежных транзакций
type PaymentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.PaymentTransaction, error)
	Update(ctx context.Context, id int64, amount float64, method domain.PaymentMethod) error
}

// ServiceTypeRepository интерфейс каталога услуг
type ServiceTypeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ServiceType, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
