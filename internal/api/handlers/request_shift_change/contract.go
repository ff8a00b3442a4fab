package request_shift_change

import (
	"context"

	"github.com/easybook/EB-BookingService/internal/domain"
)

type ShiftsService interface {
	RequestChange(ctx context.Context, employeeID, shiftID int64, reqType domain.ChangeRequestType, reason string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
