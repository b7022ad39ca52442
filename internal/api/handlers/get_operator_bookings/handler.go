package get_operator_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/aliakbar-zohour/SalonBookingService/internal/api/handlers"
	"github.com/aliakbar-zohour/SalonBookingService/internal/domain"
	"github.com/aliakbar-zohour/SalonBookingService/internal/service/bookings"
	"github.com/aliakbar-zohour/SalonBookingService/internal/service/bookings/models"
)

const (
	msgInvalidOperatorID = "некорректный ID оператора"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPeriod     = "некорректный период фильтрации"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/operators/{operatorId}/bookings
// Query params: startDate, endDate (опционально, YYYY-MM-DD, только вместе)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	operatorIDStr := vars["operatorId"]
	operatorID, err := strconv.ParseInt(operatorIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /operators/{id}/bookings - Invalid operator ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOperatorID)
		return
	}

	req := &models.GetOperatorBookingsRequest{OperatorID: operatorID}

	// Разбираем опциональный фильтр по периоду
	if startDateStr := r.URL.Query().Get("startDate"); startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			h.logger.Warn("GET /operators/{id}/bookings - Invalid start date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &startDate
	}

	if endDateStr := r.URL.Query().Get("endDate"); endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			h.logger.Warn("GET /operators/{id}/bookings - Invalid end date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &endDate
	}

	result, err := h.service.GetOperatorBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /operators/{id}/bookings - Invalid input: operator_id=%d, error=%v", operatorID, err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /operators/{id}/bookings - Failed to get bookings: operator_id=%d, error=%v",
				operatorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /operators/{id}/bookings - Bookings retrieved successfully: operator_id=%d, count=%d",
		operatorID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
