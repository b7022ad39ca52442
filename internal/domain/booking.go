package domain

import (
	"time"

	"github.com/aliakbar-zohour/SalonBookingService/pkg/types"
)

// Booking represents a committed reservation against one operator's calendar
type Booking struct {
	ID              int64
	OperatorID      int64
	UserID          int64
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int

	Title       string
	Services    []string
	Description *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveDuration returns the booking duration in minutes.
// Rows written before durations were tracked have a zero duration and are
// treated as DefaultBookingDurationMinutes long.
func (b *Booking) EffectiveDuration() int {
	if b.DurationMinutes <= 0 {
		return DefaultBookingDurationMinutes
	}
	return b.DurationMinutes
}

// EndTime returns the booking end time (start + effective duration)
func (b *Booking) EndTime() (types.TimeString, error) {
	return b.StartTime.AddMinutes(b.EffectiveDuration())
}

// IsOnDate returns true if the booking falls on the given calendar date
func (b *Booking) IsOnDate(date time.Time) bool {
	y1, m1, d1 := b.BookingDate.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// OperatorBookingsFilter фильтр для получения бронирований оператора
type OperatorBookingsFilter struct {
	OperatorID int64      // Обязательный параметр
	StartDate  *time.Time // Начало периода (опционально)
	EndDate    *time.Time // Конец периода (опционально)
}
