package shifts

import (
	"context"
	"time"

	"github.com/easybook/EB-BookingService/internal/domain"
)

// ShiftRepository интерфейс репозитория смен
type ShiftRepository interface {
	Create(ctx context.Context, shift *domain.Shift) (*domain.Shift, error)
	GetByID(ctx context.Context, id int64) (*domain.Shift, error)
	GetDetailsByDate(ctx context.Context, date time.Time) ([]*domain.ShiftDetails, error)
	NextShiftDate(ctx context.Context, employeeID int64, from time.Time) (*time.Time, error)
	Delete(ctx context.Context, id int64) error
	CreateChangeRequest(ctx context.Context, req *domain.ShiftChangeRequest) (*domain.ShiftChangeRequest, error)
	GetChangeRequestByID(ctx context.Context, id int64) (*domain.ShiftChangeRequest, error)
	UnreadChangeRequests(ctx context.Context) ([]*domain.ChangeRequestView, error)
	MarkChangeRequestRead(ctx context.Context, id int64) error
	DeleteChangeRequestsByShift(ctx context.Context, shiftID int64) error
}

// BlockedDateRepository интерфейс репозитория заблокированных дат
type BlockedDateRepository interface {
	IsBlocked(ctx context.Context, date time.Time) (bool, error)
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
