package models

import (
	"time"

	"github.com/aliakbar-zohour/SalonBookingService/internal/domain"
)

// Request модели

// GetOperatorBookingsRequest запрос на получение бронирований оператора
type GetOperatorBookingsRequest struct {
	OperatorID int64      `json:"operatorId"`
	StartDate  *time.Time `json:"startDate,omitempty"` // Начало периода (опционально)
	EndDate    *time.Time `json:"endDate,omitempty"`   // Конец периода (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetOperatorBookingsRequest) ToDomainFilter() domain.OperatorBookingsFilter {
	return domain.OperatorBookingsFilter{
		OperatorID: r.OperatorID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
	}
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64    `json:"id"`
	OperatorID      int64    `json:"operatorId"`
	UserID          int64    `json:"userId"`
	BookingDate     string   `json:"bookingDate"` // "2025-10-15"
	StartTime       string   `json:"startTime"`   // "10:00"
	EndTime         string   `json:"endTime"`     // "10:40"
	DurationMinutes int      `json:"durationMinutes"`
	Title           string   `json:"title"`
	Services        []string `json:"services"`
	Description     *string  `json:"description,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:              b.ID,
		OperatorID:      b.OperatorID,
		UserID:          b.UserID,
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		DurationMinutes: b.EffectiveDuration(),
		Title:           b.Title,
		Services:        b.Services,
		Description:     b.Description,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}

	// Конец слота вычисляется из начала и длительности
	if end, err := b.EndTime(); err == nil {
		resp.EndTime = end.String()
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}
