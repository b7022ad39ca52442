package add_blocked_day

import (
	"context"

	"github.com/aliakbar-zohour/SalonBookingService/internal/service/blockeddays/models"
)

type BlockedDayService interface {
	Add(ctx context.Context, req *models.AddBlockedDayRequest) (*models.BlockedDayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
