package worker

import (
	"context"
	"time"

	"github.com/easybook/EB-BookingService/internal/domain"
	"github.com/easybook/EB-BookingService/internal/usecase/sweep_statuses"
)

type StatusSweeper interface {
	Execute(ctx context.Context) (*sweep_statuses.Result, error)
}

type ReminderRepository interface {
	GetRemindersForDate(ctx context.Context, date time.Time) ([]*domain.ReminderBooking, error)
}

type Notifier interface {
	SendBestEffort(ctx context.Context, recipient, subject, body string)
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
