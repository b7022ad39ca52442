package create_booking

import (
	"context"
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

	created *domain.Booking
	nextID  int64
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.nextID++
	created := *booking
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

func (f *fakeBookingRepo) GetByOperatorWithFilter(_ context.Context, _ domain.OperatorBookingsFilter) ([]*domain.Booking, error) {
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

// fakeTxManager прозрачно выполняет функцию без реальной транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
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

func newTestUseCase(repo *fakeBookingRepo, blocked *fakeBlockedDayRepo, tx *fakeTxManager, now time.Time) *UseCase {
	uc := NewUseCase(repo, blocked, &stubCatalog{durations: map[string]int{
		"ماساژ": 30,
		"اصلاح": 20,
	}}, tx, noopLogger{})
	uc.timeProvider = &stubClock{now: now}
	return uc
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse(domain.DateFormat, value)
	require.NoError(t, err)
	return date
}

func validRequest(t *testing.T) *Request {
	t.Helper()
	return &Request{
		OperatorID: 1,
		UserID:     42,
		Date:       mustDate(t, "2025-10-05"),
		StartTime:  "10:00",
		Services:   []string{"ماساژ"},
	}
}

func TestExecute_CreatesBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	tx := &fakeTxManager{}
	uc := newTestUseCase(repo, &fakeBlockedDayRepo{}, tx, time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), validRequest(t))

	require.NoError(t, err)
	assert.Equal(t, 1, tx.calls)
	require.NotNil(t, repo.created)
	assert.Equal(t, 40, resp.DurationMinutes) // 30 + 10 буфер
	assert.Equal(t, types.TimeString("10:40"), resp.EndTime)
	assert.Equal(t, defaultTitle, resp.Title)
	assert.Equal(t, int64(42), repo.created.UserID)
}

func TestExecute_SlotTakenOnFinalCheck(t *testing.T) {
	date := mustDate(t, "2025-10-05")
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 7, OperatorID: 1, BookingDate: date, StartTime: "09:30", DurationMinutes: 60},
	}}
	uc := newTestUseCase(repo, &fakeBlockedDayRepo{}, &fakeTxManager{}, time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), validRequest(t))

	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, repo.created)
}

func TestExecute_BackToBackAllowed(t *testing.T) {
	date := mustDate(t, "2025-10-05")
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 7, OperatorID: 1, BookingDate: date, StartTime: "09:00", DurationMinutes: 60},
	}}
	uc := newTestUseCase(repo, &fakeBlockedDayRepo{}, &fakeTxManager{}, time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC))

	// Запись заканчивается в 10:00, новая начинается ровно в 10:00
	resp, err := uc.Execute(context.Background(), validRequest(t))

	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
}

func TestExecute_BlockedDay(t *testing.T) {
	date := mustDate(t, "2025-10-05")
	blocked := &fakeBlockedDayRepo{days: []*domain.BlockedDay{{ID: 1, Date: date}}}
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, blocked, &fakeTxManager{}, time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), validRequest(t))

	assert.ErrorIs(t, err, ErrDayBlocked)
	assert.Nil(t, repo.created)
}

func TestExecute_PastDate(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockedDayRepo{}, &fakeTxManager{}, time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), validRequest(t))

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_TooLateToBookToday(t *testing.T) {
	now := time.Date(2025, 10, 5, 10, 30, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockedDayRepo{}, &fakeTxManager{}, now)

	// Слот 10:00 уже в прошлом относительно 10:30
	_, err := uc.Execute(context.Background(), validRequest(t))

	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_OutsideWorkingHours(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockedDayRepo{}, &fakeTxManager{}, time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC))

	req := validRequest(t)
	req.StartTime = "19:45" // 19:45 + 40 минут выходит за 20:00

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrOutsideWorkingHours)
}

func TestExecute_NoServices(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockedDayRepo{}, &fakeTxManager{}, time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC))

	req := validRequest(t)
	req.Services = nil

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrNoServicesSelected)
}

func TestExecute_OnlyUnknownServices(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeBlockedDayRepo{}, &fakeTxManager{}, time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC))

	req := validRequest(t)
	req.Services = []string{"несуществующая услуга"}

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrNoServicesSelected)
	assert.Nil(t, repo.created)
}

func TestExecute_MixedUnknownServicesStillBooks(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeBlockedDayRepo{}, &fakeTxManager{}, time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC))

	req := validRequest(t)
	req.Services = []string{"ماساژ", "несуществующая услуга"}

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	// Неизвестная услуга дает 0 минут, известная считается как обычно
	assert.Equal(t, 40, resp.DurationMinutes)
	require.NotNil(t, repo.created)
}

func TestExecute_CustomTitleKept(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeBlockedDayRepo{}, &fakeTxManager{}, time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC))

	req := validRequest(t)
	req.Title = "جلسه ویژه"

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "جلسه ویژه", resp.Title)
}
