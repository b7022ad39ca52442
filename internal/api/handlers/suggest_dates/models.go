package suggest_dates

import (
	"strings"
	"time"

	"github.com/aliakbar-zohour/SalonBookingService/internal/domain"
	suggestDates "github.com/aliakbar-zohour/SalonBookingService/internal/usecase/suggest_dates"
)

// SuggestedDatesResponse HTTP response model
type SuggestedDatesResponse struct {
	OperatorID      int64    `json:"operatorId"`
	FromDate        string   `json:"fromDate"`
	DurationMinutes int      `json:"durationMinutes"`
	Dates           []string `json:"dates"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *suggestDates.Response) *SuggestedDatesResponse {
	dates := make([]string, len(resp.Dates))
	for i, date := range resp.Dates {
		dates[i] = date.Format(domain.DateFormat)
	}

	return &SuggestedDatesResponse{
		OperatorID:      resp.OperatorID,
		FromDate:        resp.FromDate.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Dates:           dates,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(operatorID int64, servicesParam, fromDateStr string) (*suggestDates.Request, error) {
	fromDate, err := time.Parse(domain.DateFormat, fromDateStr)
	if err != nil {
		return nil, err
	}

	return &suggestDates.Request{
		OperatorID: operatorID,
		Services:   parseServices(servicesParam),
		FromDate:   fromDate,
	}, nil
}

// parseServices разбирает список услуг из query параметра (через запятую)
func parseServices(param string) []string {
	parts := strings.Split(param, ",")
	services := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			services = append(services, trimmed)
		}
	}
	return services
}
