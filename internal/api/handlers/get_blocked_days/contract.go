package get_blocked_days

import (
	"context"

	"github.com/aliakbar-zohour/SalonBookingService/internal/service/blockeddays/models"
)

type BlockedDayService interface {
	List(ctx context.Context) (*models.BlockedDayListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
