package create_review

import (
	"context"

	"github.com/easybook/EB-BookingService/internal/domain"
)

type ReviewsService interface {
	Create(ctx context.Context, customerID, bookingID int64, rating int, comment string) (*domain.Review, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
