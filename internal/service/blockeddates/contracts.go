package blockeddates

import (
	"context"
	"time"
)

// BlockedDateRepository интерфейс репозитория заблокированных дат
type BlockedDateRepository interface {
	Block(ctx context.Context, date time.Time, setBy int64) error
	Unblock(ctx context.Context, date time.Time) error
	IsBlocked(ctx context.Context, date time.Time) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
