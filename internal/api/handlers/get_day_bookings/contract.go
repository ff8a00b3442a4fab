package get_day_bookings

import (
	"context"
	"time"

	bookingModels "github.com/easybook/EB-BookingService/internal/service/bookings/models"
	"github.com/easybook/EB-BookingService/pkg/types"
)

type BookingsService interface {
	GetDayView(ctx context.Context, date time.Time, windowStart, windowEnd *types.TimeString) (*bookingModels.DayViewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
