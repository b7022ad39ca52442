package add_blocked_day

import (
	"errors"
	"net/http"

	"github.com/aliakbar-zohour/SalonBookingService/internal/api/handlers"
	"github.com/aliakbar-zohour/SalonBookingService/internal/service/blockeddays"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgAlreadyBlocked     = "дата уже заблокирована"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	service BlockedDayService
	logger  Logger
}

func NewHandler(service BlockedDayService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/blocked-days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AddBlockedDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blocked-days - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /blocked-days - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Add(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, blockeddays.ErrAlreadyBlocked):
			h.logger.Warn("POST /blocked-days - Day already blocked: date=%s", req.Date)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyBlocked)

		case errors.Is(err, blockeddays.ErrInvalidInput):
			h.logger.Warn("POST /blocked-days - Invalid input: date=%s, error=%v", req.Date, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /blocked-days - Failed to block day: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blocked-days - Day blocked successfully: date=%s, id=%d", req.Date, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
