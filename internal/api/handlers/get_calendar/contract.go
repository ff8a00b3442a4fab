package get_calendar

import (
	"context"
	"time"

	"github.com/easybook/EB-BookingService/internal/domain"
	calendarModels "github.com/easybook/EB-BookingService/internal/service/calendar/models"
)

type CalendarService interface {
	Generate(ctx context.Context, role domain.Role, userID int64, year int, month time.Month) (*calendarModels.MonthView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
