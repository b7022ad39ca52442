package get_available_slots

import (
	"context"
	"fmt"
	"strings"

	"github.com/aliakbar-zohour/SalonBookingService/internal/domain"
	"github.com/aliakbar-zohour/SalonBookingService/internal/scheduling"
)

// UseCase use case для получения доступных слотов для бронирования
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

// Execute выполняет use case получения доступных слотов.
//
// Дата без единого свободного слота (прошедшая, заблокированная или полностью
// занятая) - это ожидаемый результат, а не ошибка: возвращается пустой список.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: operator=%d, services=[%s], date=%s",
		req.OperatorID, strings.Join(req.Services, ","), req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Вычисляем требуемую длительность по каталогу услуг
	duration, unknown := uc.catalog.ResolveDuration(req.Services)
	if len(unknown) > 0 {
		// Неизвестные услуги дают 0 минут - фиксируем это в логе
		uc.logger.Warn("GetAvailableSlots: unknown services ignored: [%s]", strings.Join(unknown, ","))
	}
	// Выбор из одних неизвестных услуг дал бы слоты длиной в один буфер
	if len(unknown) == len(req.Services) || duration <= 0 {
		uc.logger.Warn("GetAvailableSlots: no known services selected for operator=%d", req.OperatorID)
		return nil, ErrNoServicesSelected
	}

	// 4. Получаем заблокированные дни
	blockedDays, err := uc.blockedDayRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list blocked days: %v", err)
		return nil, fmt.Errorf("%w: failed to list blocked days: %v", ErrInternal, err)
	}

	// 5. Получаем бронирования оператора на эту дату
	filter := domain.OperatorBookingsFilter{
		OperatorID: req.OperatorID,
		StartDate:  &req.Date,
		EndDate:    &req.Date,
	}

	bookings, err := uc.bookingRepo.GetByOperatorWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Вычисляем свободные слоты
	available := scheduling.AvailableSlots(req.OperatorID, req.Date, duration, bookings, blockedDays, now)

	slots := make([]Slot, len(available))
	for i, slot := range available {
		slots[i] = Slot{
			StartTime:       slot.StartTime,
			EndTime:         slot.EndTime,
			DurationMinutes: slot.DurationMinutes,
		}
	}

	uc.logger.Info("GetAvailableSlots: %d slots for operator=%d, date=%s, duration=%d",
		len(slots), req.OperatorID, req.Date.Format(domain.DateFormat), duration)

	return &Response{
		Date:            req.Date,
		OperatorID:      req.OperatorID,
		DurationMinutes: duration,
		Slots:           slots,
	}, nil
}
