package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/aliakbar-zohour/SalonBookingService/internal/api/handlers"
	getAvailableSlots "github.com/aliakbar-zohour/SalonBookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidOperatorID = "некорректный ID оператора"
	msgMissingServices   = "список услуг обязателен"
	msgMissingDate       = "дата обязательна"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/operators/{operatorId}/available-slots
// Query params: services (required, через запятую), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем operatorId из URL
	operatorIDStr := vars["operatorId"]
	operatorID, err := strconv.ParseInt(operatorIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /operators/{id}/available-slots - Invalid operator ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOperatorID)
		return
	}

	// Извлекаем services из query параметров
	servicesParam := r.URL.Query().Get("services")
	if servicesParam == "" {
		h.logger.Warn("GET /operators/{id}/available-slots - Missing services")
		handlers.RespondBadRequest(w, msgMissingServices)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /operators/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(operatorID, servicesParam, dateStr)
	if err != nil {
		h.logger.Warn("GET /operators/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrNoServicesSelected):
			h.logger.Warn("GET /operators/{id}/available-slots - No services selected: operator_id=%d", operatorID)
			handlers.RespondBadRequest(w, msgMissingServices)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /operators/{id}/available-slots - Invalid input: operator_id=%d, error=%v", operatorID, err)
			handlers.RespondBadRequest(w, msgInvalidOperatorID)

		default:
			h.logger.Error("GET /operators/{id}/available-slots - Failed to get slots: operator_id=%d, error=%v",
				operatorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /operators/{id}/available-slots - Slots retrieved successfully: operator_id=%d, date=%s, slots_count=%d",
		operatorID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
