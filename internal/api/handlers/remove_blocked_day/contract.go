package remove_blocked_day

import (
	"context"
	"time"
)

type BlockedDayService interface {
	Remove(ctx context.Context, date time.Time) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
