package blockeddays

import (
	"context"
	"time"

	"github.com/aliakbar-zohour/SalonBookingService/internal/domain"
)

// BlockedDayRepository интерфейс реестра заблокированных дней
type BlockedDayRepository interface {
	Create(ctx context.Context, day *domain.BlockedDay) (*domain.BlockedDay, error)
	List(ctx context.Context) ([]*domain.BlockedDay, error)
	DeleteByDate(ctx context.Context, date time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
