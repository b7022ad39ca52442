package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliakbar-zohour/SalonBookingService/internal/domain"
	"github.com/aliakbar-zohour/SalonBookingService/internal/scheduling"
	"github.com/aliakbar-zohour/SalonBookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error

	gotFilter *domain.OperatorBookingsFilter
}

func (f *fakeBookingRepo) GetByOperatorWithFilter(_ context.Context, filter domain.OperatorBookingsFilter) ([]*domain.Booking, error) {
	f.gotFilter = &filter
	return f.bookings, f.err
}

type fakeBlockedDayRepo struct {
	days []*domain.BlockedDay
	err  error
}

func (f *fakeBlockedDayRepo) List(_ context.Context) ([]*domain.BlockedDay, error) {
	return f.days, f.err
}

type stubCatalog struct {
	durations map[string]int
}

func (s *stubCatalog) ResolveDuration(selected []string) (int, []string) {
	return scheduling.ResolveDuration(selected, s.durations)
}

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestUseCase(bookings *fakeBookingRepo, blocked *fakeBlockedDayRepo, now time.Time) *UseCase {
	uc := NewUseCase(bookings, blocked, &stubCatalog{durations: map[string]int{
		"ماساژ": 30,
		"اصلاح": 20,
	}}, noopLogger{})
	uc.timeProvider = &stubClock{now: now}
	return uc
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse(domain.DateFormat, value)
	require.NoError(t, err)
	return date
}

func TestExecute_ReturnsFreeSlots(t *testing.T) {
	date := mustDate(t, "2025-10-05")
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, OperatorID: 1, BookingDate: date, StartTime: "09:00", DurationMinutes: 60},
	}}
	uc := newTestUseCase(repo, &fakeBlockedDayRepo{}, time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{
		OperatorID: 1,
		Services:   []string{"ماساژ", "اصلاح"},
		Date:       date,
	})

	require.NoError(t, err)
	assert.Equal(t, 60, resp.DurationMinutes) // 30 + 20 + 10 буфер
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, types.TimeString("08:00"), resp.Slots[0].StartTime)

	// Слоты, пересекающиеся с записью [09:00, 10:00), отброшены
	for _, slot := range resp.Slots {
		free := scheduling.IsSlotFree(1, date, slot.StartTime, 60, repo.bookings, nil)
		assert.True(t, free, "slot %s overlaps an existing booking", slot.StartTime)
	}

	// Репозиторий запрашивался ровно на одну дату
	require.NotNil(t, repo.gotFilter)
	assert.Equal(t, int64(1), repo.gotFilter.OperatorID)
	require.NotNil(t, repo.gotFilter.StartDate)
	require.NotNil(t, repo.gotFilter.EndDate)
	assert.True(t, repo.gotFilter.StartDate.Equal(*repo.gotFilter.EndDate))
}

func TestExecute_BlockedDateYieldsEmpty(t *testing.T) {
	date := mustDate(t, "2025-10-05")
	blocked := &fakeBlockedDayRepo{days: []*domain.BlockedDay{{ID: 1, Date: date}}}
	uc := newTestUseCase(&fakeBookingRepo{}, blocked, time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{
		OperatorID: 1,
		Services:   []string{"ماساژ"},
		Date:       date,
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_NoServices(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockedDayRepo{}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{
		OperatorID: 1,
		Services:   nil,
		Date:       mustDate(t, "2025-10-05"),
	})

	assert.ErrorIs(t, err, ErrNoServicesSelected)
}

func TestExecute_OnlyUnknownServices(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockedDayRepo{}, time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{
		OperatorID: 1,
		Services:   []string{"несуществующая услуга"},
		Date:       mustDate(t, "2025-10-05"),
	})

	assert.ErrorIs(t, err, ErrNoServicesSelected)
}

func TestExecute_InvalidOperator(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockedDayRepo{}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{
		OperatorID: 0,
		Services:   []string{"ماساژ"},
		Date:       mustDate(t, "2025-10-05"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("connection refused")}
	uc := newTestUseCase(repo, &fakeBlockedDayRepo{}, time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{
		OperatorID: 1,
		Services:   []string{"ماساژ"},
		Date:       mustDate(t, "2025-10-05"),
	})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_TodayExcludesPastSlots(t *testing.T) {
	date := mustDate(t, "2025-10-05")
	now := time.Date(2025, 10, 5, 9, 15, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockedDayRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		OperatorID: 1,
		Services:   []string{"ماساژ"},
		Date:       date,
	})

	require.NoError(t, err)
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, types.TimeString("09:30"), resp.Slots[0].StartTime)
}
