package assign_shift

import (
	"context"
	"time"

	shiftModels "github.com/easybook/EB-BookingService/internal/service/shifts/models"
	"github.com/easybook/EB-BookingService/pkg/types"
)

type ShiftsService interface {
	Assign(ctx context.Context, employeeID int64, date time.Time, start, end types.TimeString) (*shiftModels.ShiftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
