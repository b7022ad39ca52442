package create_booking

import (
	"time"

	"github.com/aliakbar-zohour/SalonBookingService/internal/domain"
	createBooking "github.com/aliakbar-zohour/SalonBookingService/internal/usecase/create_booking"
	"github.com/aliakbar-zohour/SalonBookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	OperatorID  int64    `json:"operatorId"`
	Date        string   `json:"date"`      // "2025-10-15"
	StartTime   string   `json:"startTime"` // "10:00"
	Services    []string `json:"services"`
	Title       string   `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64    `json:"id"`
	OperatorID      int64    `json:"operatorId"`
	UserID          int64    `json:"userId"`
	BookingDate     string   `json:"bookingDate"`
	StartTime       string   `json:"startTime"`
	EndTime         string   `json:"endTime"`
	DurationMinutes int      `json:"durationMinutes"`
	Title           string   `json:"title"`
	Services        []string `json:"services"`
	Description     *string  `json:"description,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом даты и времени)
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		OperatorID:  r.OperatorID,
		UserID:      userID,
		Date:        date,
		StartTime:   startTime,
		Services:    r.Services,
		Title:       r.Title,
		Description: r.Description,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		OperatorID:      resp.OperatorID,
		UserID:          resp.UserID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Title:           resp.Title,
		Services:        resp.Services,
		Description:     resp.Description,
		CreatedAt:       resp.CreatedAt,
		UpdatedAt:       resp.UpdatedAt,
	}
}
