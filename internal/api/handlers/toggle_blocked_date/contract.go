package toggle_blocked_date

import (
	"context"
	"time"
)

type BlockedDatesService interface {
	Toggle(ctx context.Context, date time.Time, adminID int64) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
