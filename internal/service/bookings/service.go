package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/aliakbar-zohour/SalonBookingService/internal/infra/storage/booking"
	"github.com/aliakbar-zohour/SalonBookingService/internal/service/bookings/models"
)

// Service сервис для чтения и удаления бронирований.
// Создание бронирования живет в отдельном usecase из-за транзакционной
// проверки конфликтов.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь может видеть только своё бронирование
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetOperatorBookings получает бронирования оператора
// Опционально фильтрует по периоду дат
//
// Примеры использования:
// - Все бронирования: GetOperatorBookings(ctx, &GetOperatorBookingsRequest{OperatorID: 1})
// - Бронирования на дату: StartDate и EndDate указывают на одну дату
// - Бронирования за период: StartDate и EndDate указывают на разные даты
func (s *Service) GetOperatorBookings(ctx context.Context, req *models.GetOperatorBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := fmt.Sprintf("GetOperatorBookings: fetching bookings for operator=%d", req.OperatorID)
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"))
	}
	s.logger.Info(logMsg)

	if req.OperatorID <= 0 {
		s.logger.Warn("GetOperatorBookings: invalid operator id=%d", req.OperatorID)
		return nil, fmt.Errorf("%w: operatorID must be positive", ErrInvalidInput)
	}

	if (req.StartDate == nil) != (req.EndDate == nil) {
		s.logger.Warn("GetOperatorBookings: incomplete period filter for operator=%d", req.OperatorID)
		return nil, fmt.Errorf("%w: both startDate and endDate are required for a period filter", ErrInvalidInput)
	}

	if req.StartDate != nil && req.EndDate.Before(*req.StartDate) {
		s.logger.Warn("GetOperatorBookings: endDate before startDate for operator=%d", req.OperatorID)
		return nil, fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByOperatorWithFilter(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("GetOperatorBookings: repository error for operator=%d: %v", req.OperatorID, err)
		return nil, fmt.Errorf("%w: GetOperatorBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetOperatorBookings: successfully fetched %d bookings for operator=%d", len(bookings), req.OperatorID)
	return models.FromDomainBookingList(bookings), nil
}

// Delete удаляет бронирование
// Пользователь может удалить только своё бронирование
func (s *Service) Delete(ctx context.Context, id int64, userID int64) error {
	s.logger.Info("Delete: deleting booking id=%d by user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != userID {
		s.logger.Warn("Delete: access denied for user=%d to booking id=%d", userID, id)
		return ErrAccessDenied
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found during deletion", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}
