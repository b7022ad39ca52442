package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliakbar-zohour/SalonBookingService/internal/domain"
	"github.com/aliakbar-zohour/SalonBookingService/pkg/ptr"
	"github.com/aliakbar-zohour/SalonBookingService/pkg/types"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse(domain.DateFormat, value)
	require.NoError(t, err)
	return date
}

func makeBooking(id, operatorID int64, date time.Time, start types.TimeString, durationMinutes int) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		OperatorID:      operatorID,
		BookingDate:     date,
		StartTime:       start,
		DurationMinutes: durationMinutes,
	}
}

func TestIsSlotFree_EmptyCalendar(t *testing.T) {
	date := mustDate(t, "2025-10-05")

	assert.True(t, IsSlotFree(1, date, "10:00", 60, nil, nil))
}

func TestIsSlotFree_BackToBackAllowed(t *testing.T) {
	date := mustDate(t, "2025-10-05")
	bookings := []*domain.Booking{
		makeBooking(1, 1, date, "10:00", 60), // [10:00, 11:00)
	}

	// Слот сразу после существующей записи - границы не пересекаются
	assert.True(t, IsSlotFree(1, date, "11:00", 60, bookings, nil))

	// Слот, заканчивающийся ровно в начале существующей записи
	assert.True(t, IsSlotFree(1, date, "09:00", 60, bookings, nil))
}

func TestIsSlotFree_OverlapRejected(t *testing.T) {
	date := mustDate(t, "2025-10-05")
	bookings := []*domain.Booking{
		makeBooking(1, 1, date, "10:00", 60), // [10:00, 11:00)
	}

	tests := []struct {
		name  string
		start types.TimeString
		dur   int
	}{
		{"partial overlap from left", "09:30", 60},
		{"partial overlap from right", "10:30", 60},
		{"fully inside", "10:15", 30},
		{"fully covering", "09:30", 120},
		{"identical interval", "10:00", 60},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, IsSlotFree(1, date, tc.start, tc.dur, bookings, nil))
		})
	}
}

func TestIsSlotFree_OtherOperatorNeverConflicts(t *testing.T) {
	date := mustDate(t, "2025-10-05")
	bookings := []*domain.Booking{
		makeBooking(1, 2, date, "10:00", 60),
	}

	assert.True(t, IsSlotFree(1, date, "10:00", 60, bookings, nil))
}

func TestIsSlotFree_OtherDateNeverConflicts(t *testing.T) {
	bookings := []*domain.Booking{
		makeBooking(1, 1, mustDate(t, "2025-10-06"), "10:00", 60),
	}

	assert.True(t, IsSlotFree(1, mustDate(t, "2025-10-05"), "10:00", 60, bookings, nil))
}

func TestIsSlotFree_ExcludesOwnBooking(t *testing.T) {
	date := mustDate(t, "2025-10-05")
	booking := makeBooking(42, 1, date, "10:00", 60)
	bookings := []*domain.Booking{booking}

	// Перенос записи на её же интервал: сама с собой не конфликтует
	assert.True(t, IsSlotFree(1, date, "10:00", 60, bookings, ptr.Ptr(int64(42))))
	assert.True(t, IsSlotFree(1, date, "10:30", 60, bookings, ptr.Ptr(int64(42))))

	// Без исключения тот же интервал занят
	assert.False(t, IsSlotFree(1, date, "10:00", 60, bookings, nil))
}

func TestIsSlotFree_ResultIndependentOfOwnPresence(t *testing.T) {
	date := mustDate(t, "2025-10-05")
	own := makeBooking(7, 1, date, "12:00", 30)
	other := makeBooking(8, 1, date, "14:00", 30)

	withOwn := []*domain.Booking{own, other}
	withoutOwn := []*domain.Booking{other}

	for _, start := range []types.TimeString{"08:00", "11:30", "12:00", "13:30", "14:00"} {
		got := IsSlotFree(1, date, start, 30, withOwn, ptr.Ptr(int64(7)))
		want := IsSlotFree(1, date, start, 30, withoutOwn, nil)
		assert.Equal(t, want, got, "start=%s", start)
	}
}

func TestIsSlotFree_ZeroDurationBookingDefaultsTo30Minutes(t *testing.T) {
	date := mustDate(t, "2025-10-05")
	bookings := []*domain.Booking{
		makeBooking(1, 1, date, "10:00", 0), // трактуется как [10:00, 10:30)
	}

	assert.False(t, IsSlotFree(1, date, "10:15", 30, bookings, nil))
	assert.True(t, IsSlotFree(1, date, "10:30", 30, bookings, nil))
}

func TestIsSlotFree_IntervalPastMidnight(t *testing.T) {
	date := mustDate(t, "2025-10-05")

	// Конец интервала выходит за пределы суток
	assert.False(t, IsSlotFree(1, date, "23:30", 60, nil, nil))
}
