package create_booking

import (
	"context"
	"time"

	"github.com/aliakbar-zohour/SalonBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
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

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
