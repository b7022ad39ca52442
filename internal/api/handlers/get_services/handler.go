package get_services

import (
	"net/http"

	"github.com/aliakbar-zohour/SalonBookingService/internal/api/handlers"
)

type Handler struct {
	catalog ServiceCatalog
	logger  Logger
}

func NewHandler(catalog ServiceCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	services := h.catalog.Services()

	response := FromCatalogServices(services)

	h.logger.Info("GET /services - Catalog retrieved successfully: services_count=%d", len(services))
	handlers.RespondJSON(w, http.StatusOK, response)
}
