package get_blocked_days

import (
	"net/http"

	"github.com/aliakbar-zohour/SalonBookingService/internal/api/handlers"
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

// Handle GET /api/v1/blocked-days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /blocked-days - Failed to list blocked days: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /blocked-days - Blocked days retrieved successfully: count=%d", len(result.BlockedDays))
	handlers.RespondJSON(w, http.StatusOK, result)
}
