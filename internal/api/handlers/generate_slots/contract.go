package generate_slots

import (
	"context"
	"time"

	slotModels "github.com/easybook/EB-BookingService/internal/service/slots/models"
)

type SlotsService interface {
	GenerateDefaultSlots(ctx context.Context, date time.Time) (*slotModels.GenerateResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
