package create_booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/aliakbar-zohour/SalonBookingService/internal/domain"
	"github.com/aliakbar-zohour/SalonBookingService/internal/scheduling"
)

// defaultTitle заголовок записи, если пользователь его не указал
const defaultTitle = "رزرو"

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	blockedDayRepo BlockedDayRepository
	catalog        ServiceCatalog
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	blockedDayRepo BlockedDayRepository,
	catalog ServiceCatalog,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		blockedDayRepo: blockedDayRepo,
		catalog:        catalog,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования.
//
// Расчёт доступности и фиксация записи разнесены во времени, поэтому два
// почти одновременных запроса могут выбрать один и тот же свободный слот.
// Финальная проверка конфликта выполняется в сериализуемой транзакции по
// строкам, заблокированным FOR UPDATE: второй запрос получит ErrSlotTaken.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: operator=%d, user=%d, date=%s, time=%s, services=[%s]",
		req.OperatorID, req.UserID, req.Date.Format(domain.DateFormat), req.StartTime,
		strings.Join(req.Services, ","))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Вычисляем требуемую длительность по каталогу услуг
	duration, unknown := uc.catalog.ResolveDuration(req.Services)
	if len(unknown) > 0 {
		uc.logger.Warn("CreateBooking: unknown services ignored: [%s]", strings.Join(unknown, ","))
	}
	// Выбор из одних неизвестных услуг дал бы запись длиной в один буфер
	if len(unknown) == len(req.Services) || duration <= 0 {
		uc.logger.Warn("CreateBooking: no known services selected for operator=%d", req.OperatorID)
		return nil, ErrNoServicesSelected
	}

	// 4. Валидация даты и времени
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	if err := validateWorkingWindow(req.StartTime, duration); err != nil {
		uc.logger.Warn("CreateBooking: working window validation failed: %v", err)
		return nil, err
	}

	if err := validateBookingTime(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateBooking: booking time validation failed: %v", err)
		return nil, err
	}

	// 5. Проверяем, что дата не заблокирована
	blockedDays, err := uc.blockedDayRepo.List(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list blocked days: %v", err)
		return nil, fmt.Errorf("%w: failed to list blocked days: %v", ErrInternal, err)
	}

	if scheduling.IsDayBlocked(req.Date, blockedDays) {
		uc.logger.Warn("CreateBooking: day %s is blocked", req.Date.Format(domain.DateFormat))
		return nil, ErrDayBlocked
	}

	title := req.Title
	if title == "" {
		title = defaultTitle
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 6. Финальная проверка конфликта и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем бронирования оператора на эту дату с блокировкой (FOR UPDATE)
		filter := domain.OperatorBookingsFilter{
			OperatorID: req.OperatorID,
			StartDate:  &req.Date,
			EndDate:    &req.Date,
		}

		bookings, err := uc.bookingRepo.GetByOperatorWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6.2. Финальная проверка: слот мог быть занят после расчёта доступности
		if !scheduling.IsSlotFree(req.OperatorID, req.Date, req.StartTime, duration, bookings, nil) {
			uc.logger.Warn("CreateBooking: slot %s taken between availability check and commit", req.StartTime)
			return ErrSlotTaken
		}

		// 6.3. Создаем бронирование
		booking := &domain.Booking{
			OperatorID:      req.OperatorID,
			UserID:          req.UserID,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: duration,
			Title:           title,
			Services:        req.Services,
			Description:     req.Description,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	endTime, err := result.EndTime()
	if err != nil {
		// Окно уже провалидировано, сюда попасть нельзя
		return nil, fmt.Errorf("%w: failed to compute end time: %v", ErrInternal, err)
	}

	return &Response{
		ID:              result.ID,
		OperatorID:      result.OperatorID,
		UserID:          result.UserID,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		EndTime:         endTime,
		DurationMinutes: result.DurationMinutes,
		Title:           result.Title,
		Services:        result.Services,
		Description:     result.Description,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
