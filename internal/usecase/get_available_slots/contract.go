package get_available_slots

import (
	"context"
	"time"

	"github.com/aliakbar-zohour/SalonBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByOperatorWithFilter получает бронирования оператора на конкретную дату
	GetByOperatorWithFilter(ctx context.Context, filter domain.OperatorBookingsFilter) ([]*domain.Booking, error)
}

// BlockedDayRepository интерфейс реестра заблокированных дней
type BlockedDayRepository interface {
	List(ctx context.Context) ([]*domain.BlockedDay, error)
}

// ServiceCatalog интерфейс статического каталога услуг
type ServiceCatalog interface {
	ResolveDuration(selected []string) (int, []string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
