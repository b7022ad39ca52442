package suggest_dates

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aliakbar-zohour/SalonBookingService/internal/domain"
	"github.com/aliakbar-zohour/SalonBookingService/internal/scheduling"
)

// UseCase use case для поиска альтернативных дат с доступными слотами.
// Тонкая обертка над расчётом доступности: вызывается, когда на запрошенной
// дате не нашлось ни одного свободного слота.
type UseCase struct {
	bookingRepo    BookingRepository
	blockedDayRepo BlockedDayRepository
	catalog        ServiceCatalog
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	blockedDayRepo BlockedDayRepository,
	catalog ServiceCatalog,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		blockedDayRepo: blockedDayRepo,
		catalog:        catalog,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case поиска альтернативных дат.
// Пустой список дат - ожидаемый результат, когда весь горизонт занят.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SuggestDates: operator=%d, services=[%s], from=%s",
		req.OperatorID, strings.Join(req.Services, ","), req.FromDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SuggestDates: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Вычисляем требуемую длительность по каталогу услуг
	duration, unknown := uc.catalog.ResolveDuration(req.Services)
	if len(unknown) > 0 {
		uc.logger.Warn("SuggestDates: unknown services ignored: [%s]", strings.Join(unknown, ","))
	}
	// Выбор из одних неизвестных услуг дал бы поиск под один буфер
	if len(unknown) == len(req.Services) || duration <= 0 {
		uc.logger.Warn("SuggestDates: no known services selected for operator=%d", req.OperatorID)
		return nil, ErrNoServicesSelected
	}

	// 4. Получаем заблокированные дни
	blockedDays, err := uc.blockedDayRepo.List(ctx)
	if err != nil {
		uc.logger.Error("SuggestDates: failed to list blocked days: %v", err)
		return nil, fmt.Errorf("%w: failed to list blocked days: %v", ErrInternal, err)
	}

	// 5. Получаем бронирования оператора на весь горизонт сканирования одним запросом
	scanStart, scanEnd := scanWindow(req.FromDate, now)
	filter := domain.OperatorBookingsFilter{
		OperatorID: req.OperatorID,
		StartDate:  &scanStart,
		EndDate:    &scanEnd,
	}

	bookings, err := uc.bookingRepo.GetByOperatorWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("SuggestDates: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Сканируем горизонт
	suggested := scheduling.SuggestDates(req.OperatorID, duration, req.FromDate, bookings, blockedDays, now)

	dates := make([]time.Time, len(suggested))
	for i, s := range suggested {
		dates[i] = s.Date
	}

	uc.logger.Info("SuggestDates: %d dates suggested for operator=%d", len(dates), req.OperatorID)

	return &Response{
		OperatorID:      req.OperatorID,
		FromDate:        req.FromDate,
		DurationMinutes: duration,
		Dates:           dates,
	}, nil
}

func validateRequest(req *Request) error {
	if req.OperatorID <= 0 {
		return fmt.Errorf("%w: operatorID must be positive", ErrInvalidInput)
	}

	if req.FromDate.IsZero() {
		return fmt.Errorf("%w: fromDate is required", ErrInvalidInput)
	}

	if len(req.Services) == 0 {
		return ErrNoServicesSelected
	}

	return nil
}

// scanWindow возвращает границы периода, за который нужны бронирования.
// Сканирование идет со дня, следующего за fromDate (или за сегодня,
// если fromDate уже прошла), на глубину горизонта.
func scanWindow(fromDate, now time.Time) (time.Time, time.Time) {
	base := time.Date(fromDate.Year(), fromDate.Month(), fromDate.Day(), 0, 0, 0, 0, fromDate.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if base.Before(today) {
		base = today
	}
	return base.AddDate(0, 0, 1), base.AddDate(0, 0, domain.SuggestionHorizonDays)
}
