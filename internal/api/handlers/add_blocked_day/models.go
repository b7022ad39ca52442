package add_blocked_day

import (
	"time"

	"github.com/aliakbar-zohour/SalonBookingService/internal/domain"
	"github.com/aliakbar-zohour/SalonBookingService/internal/service/blockeddays/models"
)

// AddBlockedDayRequest HTTP request model
type AddBlockedDayRequest struct {
	Date   string  `json:"date"` // "2025-10-15"
	Reason *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса (с парсингом даты)
func (r *AddBlockedDayRequest) ToServiceRequest() (*models.AddBlockedDayRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &models.AddBlockedDayRequest{
		Date:   date,
		Reason: r.Reason,
	}, nil
}
