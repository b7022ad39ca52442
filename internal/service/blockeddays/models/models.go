package models

import (
	"time"

	"github.com/aliakbar-zohour/SalonBookingService/internal/domain"
)

// Request модели

// AddBlockedDayRequest запрос на блокировку даты
type AddBlockedDayRequest struct {
	Date   time.Time `json:"date"`
	Reason *string   `json:"reason,omitempty"` // Если не указана, подставляется причина по умолчанию
}

// Response модели

// BlockedDayResponse ответ с данными заблокированного дня
type BlockedDayResponse struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"` // "2025-10-15"
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlockedDayListResponse ответ со списком заблокированных дней
type BlockedDayListResponse struct {
	BlockedDays []BlockedDayResponse `json:"blockedDays"`
}

// Методы конвертации

// FromDomainBlockedDay конвертирует domain модель в DTO
func FromDomainBlockedDay(d *domain.BlockedDay) *BlockedDayResponse {
	if d == nil {
		return nil
	}

	return &BlockedDayResponse{
		ID:        d.ID,
		Date:      d.Date.Format(domain.DateFormat),
		Reason:    d.Reason,
		CreatedAt: d.CreatedAt,
	}
}

// FromDomainBlockedDayList конвертирует список domain моделей в DTO
func FromDomainBlockedDayList(days []*domain.BlockedDay) *BlockedDayListResponse {
	if days == nil {
		return &BlockedDayListResponse{
			BlockedDays: []BlockedDayResponse{},
		}
	}

	resp := &BlockedDayListResponse{
		BlockedDays: make([]BlockedDayResponse, len(days)),
	}

	for i, day := range days {
		if dayResp := FromDomainBlockedDay(day); dayResp != nil {
			resp.BlockedDays[i] = *dayResp
		}
	}

	return resp
}
