package blockeddays

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aliakbar-zohour/SalonBookingService/internal/domain"
	blockedDayRepo "github.com/aliakbar-zohour/SalonBookingService/internal/infra/storage/blockedday"
	"github.com/aliakbar-zohour/SalonBookingService/internal/service/blockeddays/models"
	"github.com/aliakbar-zohour/SalonBookingService/pkg/ptr"
)

// Service сервис для управления заблокированными днями.
// Блокировка действует на всех операторов: заблокированный день не отдаёт
// слотов и не принимает бронирований.
type Service struct {
	blockedDayRepo BlockedDayRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса заблокированных дней
func NewService(
	blockedDayRepo BlockedDayRepository,
	logger Logger,
) *Service {
	return &Service{
		blockedDayRepo: blockedDayRepo,
		logger:         logger,
	}
}

// List возвращает все заблокированные дни
func (s *Service) List(ctx context.Context) (*models.BlockedDayListResponse, error) {
	s.logger.Info("List: fetching blocked days")

	days, err := s.blockedDayRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d blocked days", len(days))
	return models.FromDomainBlockedDayList(days), nil
}

// Add блокирует дату
// Если причина не указана, подставляется причина по умолчанию
func (s *Service) Add(ctx context.Context, req *models.AddBlockedDayRequest) (*models.BlockedDayResponse, error) {
	s.logger.Info("Add: blocking date=%s", req.Date.Format(domain.DateFormat))

	if req.Date.IsZero() {
		s.logger.Warn("Add: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	reason := req.Reason
	if reason == nil || *reason == "" {
		reason = ptr.Ptr(domain.DefaultBlockReason)
	}

	if len(*reason) > domain.MaxReasonLength {
		s.logger.Warn("Add: reason is too long for date=%s", req.Date.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: reason is too long", ErrInvalidInput)
	}

	day := &domain.BlockedDay{
		Date:   truncateToDay(req.Date),
		Reason: reason,
	}

	created, err := s.blockedDayRepo.Create(ctx, day)
	if err != nil {
		if errors.Is(err, blockedDayRepo.ErrAlreadyBlocked) {
			s.logger.Warn("Add: date=%s is already blocked", req.Date.Format(domain.DateFormat))
			return nil, ErrAlreadyBlocked
		}
		s.logger.Error("Add: repository error for date=%s: %v", req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Add: successfully blocked date=%s id=%d", req.Date.Format(domain.DateFormat), created.ID)
	return models.FromDomainBlockedDay(created), nil
}

// Remove снимает блокировку с даты
func (s *Service) Remove(ctx context.Context, date time.Time) error {
	s.logger.Info("Remove: unblocking date=%s", date.Format(domain.DateFormat))

	if date.IsZero() {
		s.logger.Warn("Remove: date is required")
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := s.blockedDayRepo.DeleteByDate(ctx, truncateToDay(date)); err != nil {
		if errors.Is(err, blockedDayRepo.ErrBlockedDayNotFound) {
			s.logger.Warn("Remove: date=%s is not blocked", date.Format(domain.DateFormat))
			return ErrBlockedDayNotFound
		}
		s.logger.Error("Remove: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Remove: successfully unblocked date=%s", date.Format(domain.DateFormat))
	return nil
}

// truncateToDay обнуляет компоненту времени
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
