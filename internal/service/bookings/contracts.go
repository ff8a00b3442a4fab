package bookings

import (
	"context"
	"time"

	"github.com/easybook/EB-BookingService/internal/domain"
	bookingRepo "github.com/easybook/EB-BookingService/internal/infra/storage/booking"
	"github.com/easybook/EB-BookingService/internal/usecase/sweep_statuses"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByCustomer(ctx context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetDetailsByDate(ctx context.Context, date time.Time, window *bookingRepo.TimeWindow) ([]*domain.BookingDetails, error)
}

// ShiftRepository интерфейс репозитория смен
type ShiftRepository interface {
	GetDetailsByDate(ctx context.Context, date time.Time) ([]*domain.ShiftDetails, error)
}

// StatusSweeper сверяет статусы записей с часами перед выдачей списков
type StatusSweeper interface {
	Execute(ctx context.Context) (*sweep_statuses.Result, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
