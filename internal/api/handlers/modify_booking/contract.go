package modify_booking

import (
	"context"

	modifyBooking "github.com/easybook/EB-BookingService/internal/usecase/modify_booking"
)

type ModifyBookingUseCase interface {
	Execute(ctx context.Context, req *modifyBooking.Request) (*modifyBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
