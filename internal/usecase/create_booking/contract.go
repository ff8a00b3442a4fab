package create_booking

import (
	"context"
	"time"

	"github.com/easybook/EB-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	CountCurrentByCustomer(ctx context.Context, customerID int64) (int, error)
}

// SlotRepository интерфейс репозитория временных слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
	AdjustCapacity(ctx context.Context, id int64, delta int) error
}

// PaymentRepository интерфейс репозитория платежных транзакций
type PaymentRepository interface {
	Create(ctx context.Context, transaction *domain.PaymentTransaction) (*domain.PaymentTransaction, error)
}

// ServiceTypeRepository интерфейс каталога услуг
type ServiceTypeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ServiceType, error)
}

// UserRepository интерфейс репозитория пользователей (только чтение)
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// NotifierClient интерфейс клиента сервиса уведомлений
type NotifierClient interface {
	SendBestEffort(ctx context.Context, recipient, subject, body string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
