package suggest_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/aliakbar-zohour/SalonBookingService/internal/api/handlers"
	suggestDates "github.com/aliakbar-zohour/SalonBookingService/internal/usecase/suggest_dates"
)

const (
	msgInvalidOperatorID = "некорректный ID оператора"
	msgMissingServices   = "список услуг обязателен"
	msgMissingFromDate   = "дата начала поиска обязательна"
	msgInvalidFromDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase SuggestDatesUseCase
	logger  Logger
}

func NewHandler(useCase SuggestDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/operators/{operatorId}/suggested-dates
// Query params: services (required, через запятую), from (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	operatorIDStr := vars["operatorId"]
	operatorID, err := strconv.ParseInt(operatorIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /operators/{id}/suggested-dates - Invalid operator ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOperatorID)
		return
	}

	servicesParam := r.URL.Query().Get("services")
	if servicesParam == "" {
		h.logger.Warn("GET /operators/{id}/suggested-dates - Missing services")
		handlers.RespondBadRequest(w, msgMissingServices)
		return
	}

	fromDateStr := r.URL.Query().Get("from")
	if fromDateStr == "" {
		h.logger.Warn("GET /operators/{id}/suggested-dates - Missing from date")
		handlers.RespondBadRequest(w, msgMissingFromDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(operatorID, servicesParam, fromDateStr)
	if err != nil {
		h.logger.Warn("GET /operators/{id}/suggested-dates - Invalid from date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFromDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, suggestDates.ErrNoServicesSelected):
			h.logger.Warn("GET /operators/{id}/suggested-dates - No services selected: operator_id=%d", operatorID)
			handlers.RespondBadRequest(w, msgMissingServices)

		case errors.Is(err, suggestDates.ErrInvalidInput):
			h.logger.Warn("GET /operators/{id}/suggested-dates - Invalid input: operator_id=%d, error=%v", operatorID, err)
			handlers.RespondBadRequest(w, msgInvalidOperatorID)

		default:
			h.logger.Error("GET /operators/{id}/suggested-dates - Failed to suggest dates: operator_id=%d, error=%v",
				operatorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /operators/{id}/suggested-dates - Dates suggested successfully: operator_id=%d, from=%s, dates_count=%d",
		operatorID, fromDateStr, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, response)
}
