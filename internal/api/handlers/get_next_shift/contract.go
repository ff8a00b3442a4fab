package get_next_shift

import (
	"context"

	shiftModels "github.com/easybook/EB-BookingService/internal/service/shifts/models"
)

type ShiftsService interface {
	NextShiftDate(ctx context.Context, employeeID int64) (*shiftModels.NextShiftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
