package get_customer_bookings

import (
	"context"

	bookingModels "github.com/easybook/EB-BookingService/internal/service/bookings/models"
)

type BookingsService interface {
	GetCustomerBookings(ctx context.Context, customerID int64, status *string) (*bookingModels.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
