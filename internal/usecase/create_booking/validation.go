package create_booking

import (
	"fmt"
	"time"

	"github.com/aliakbar-zohour/SalonBookingService/internal/domain"
	"github.com/aliakbar-zohour/SalonBookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.OperatorID <= 0 {
		return fmt.Errorf("%w: operatorID must be positive", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if len(req.Services) == 0 {
		return ErrNoServicesSelected
	}

	if len(req.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title is too long", ErrInvalidInput)
	}

	if req.Description != nil && len(*req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description is too long", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом
func validateDate(bookingDate time.Time, now time.Time) error {
	dateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}

// validateWorkingWindow проверяет, что слот целиком помещается в рабочее окно
func validateWorkingWindow(start types.TimeString, durationMinutes int) error {
	if start.IsBefore(domain.WorkDayOpenTime) {
		return fmt.Errorf("%w: starts before %s", ErrOutsideWorkingHours, domain.WorkDayOpenTime)
	}

	end, err := start.AddMinutes(durationMinutes)
	if err != nil || end.IsAfter(domain.WorkDayCloseTime) {
		return fmt.Errorf("%w: ends after %s", ErrOutsideWorkingHours, domain.WorkDayCloseTime)
	}

	return nil
}

// validateBookingTime проверяет, что начало слота сегодня еще не прошло
func validateBookingTime(bookingDate time.Time, start types.TimeString, now time.Time) error {
	y1, m1, d1 := bookingDate.Date()
	y2, m2, d2 := now.Date()
	if y1 != y2 || m1 != m2 || d1 != d2 {
		// Дата не сегодня - проверка не нужна
		return nil
	}

	// Начало должно быть строго позже текущего времени
	if !start.IsAfter(types.NewTimeString(now)) {
		return ErrTooLateToBook
	}

	return nil
}
