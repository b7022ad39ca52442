package get_operator_bookings

import (
	"context"

	"github.com/aliakbar-zohour/SalonBookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetOperatorBookings(ctx context.Context, req *models.GetOperatorBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
