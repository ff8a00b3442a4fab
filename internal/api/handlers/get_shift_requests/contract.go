package get_shift_requests

import (
	"context"

	shiftModels "github.com/easybook/EB-BookingService/internal/service/shifts/models"
)

type ShiftsService interface {
	UnreadRequests(ctx context.Context) (*shiftModels.ChangeRequestListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
