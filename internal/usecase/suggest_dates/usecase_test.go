package suggest_dates

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliakbar-zohour/SalonBookingService/internal/domain"
	"github.com/aliakbar-zohour/SalonBookingService/internal/scheduling"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking

	gotFilter *domain.OperatorBookingsFilter
}

func (f *fakeBookingRepo) GetByOperatorWithFilter(_ context.Context, filter domain.OperatorBookingsFilter) ([]*domain.Booking, error) {
	f.gotFilter = &filter
	return f.bookings, nil
}

type fakeBlockedDayRepo struct {
	days []*domain.BlockedDay
}

func (f *fakeBlockedDayRepo) List(_ context.Context) ([]*domain.BlockedDay, error) {
	return f.days, nil
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

func newTestUseCase(repo *fakeBookingRepo, blocked *fakeBlockedDayRepo, now time.Time) *UseCase {
	uc := NewUseCase(repo, blocked, &stubCatalog{durations: map[string]int{
		"ماساژ": 30,
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

func TestExecute_SuggestsNextFreeDates(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeBlockedDayRepo{}, time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{
		OperatorID: 1,
		Services:   []string{"ماساژ"},
		FromDate:   mustDate(t, "2025-10-05"),
	})

	require.NoError(t, err)
	assert.Equal(t, 40, resp.DurationMinutes)
	require.Len(t, resp.Dates, domain.MaxSuggestedDates)
	assert.Equal(t, mustDate(t, "2025-10-06"), resp.Dates[0])
	assert.Equal(t, mustDate(t, "2025-10-07"), resp.Dates[1])
	assert.Equal(t, mustDate(t, "2025-10-08"), resp.Dates[2])

	// Бронирования запрошены одним запросом на весь горизонт
	require.NotNil(t, repo.gotFilter)
	require.NotNil(t, repo.gotFilter.StartDate)
	require.NotNil(t, repo.gotFilter.EndDate)
	assert.Equal(t, mustDate(t, "2025-10-06"), *repo.gotFilter.StartDate)
	assert.Equal(t, mustDate(t, "2025-10-12"), *repo.gotFilter.EndDate)
}

func TestExecute_SkipsBlockedDays(t *testing.T) {
	blocked := &fakeBlockedDayRepo{days: []*domain.BlockedDay{
		{ID: 1, Date: mustDate(t, "2025-10-06")},
		{ID: 2, Date: mustDate(t, "2025-10-07")},
	}}
	uc := newTestUseCase(&fakeBookingRepo{}, blocked, time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{
		OperatorID: 1,
		Services:   []string{"ماساژ"},
		FromDate:   mustDate(t, "2025-10-05"),
	})

	require.NoError(t, err)
	require.Len(t, resp.Dates, domain.MaxSuggestedDates)
	assert.Equal(t, mustDate(t, "2025-10-08"), resp.Dates[0])
	assert.Equal(t, mustDate(t, "2025-10-09"), resp.Dates[1])
	assert.Equal(t, mustDate(t, "2025-10-10"), resp.Dates[2])
}

func TestExecute_PastFromDateScansFromToday(t *testing.T) {
	now := time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockedDayRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		OperatorID: 1,
		Services:   []string{"ماساژ"},
		FromDate:   mustDate(t, "2025-10-01"),
	})

	require.NoError(t, err)
	require.NotEmpty(t, resp.Dates)
	assert.Equal(t, mustDate(t, "2025-10-11"), resp.Dates[0])
}

func TestExecute_AllHorizonBlockedYieldsEmpty(t *testing.T) {
	days := make([]*domain.BlockedDay, 0, domain.SuggestionHorizonDays)
	from := mustDate(t, "2025-10-05")
	for i := 1; i <= domain.SuggestionHorizonDays; i++ {
		days = append(days, &domain.BlockedDay{ID: int64(i), Date: from.AddDate(0, 0, i)})
	}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockedDayRepo{days: days}, time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{
		OperatorID: 1,
		Services:   []string{"ماساژ"},
		FromDate:   from,
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Dates)
}

func TestExecute_NoServices(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockedDayRepo{}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{
		OperatorID: 1,
		FromDate:   mustDate(t, "2025-10-05"),
	})

	assert.ErrorIs(t, err, ErrNoServicesSelected)
}

func TestExecute_OnlyUnknownServices(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockedDayRepo{}, time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{
		OperatorID: 1,
		Services:   []string{"несуществующая услуга"},
		FromDate:   mustDate(t, "2025-10-05"),
	})

	assert.ErrorIs(t, err, ErrNoServicesSelected)
}
