package get_services

import "github.com/aliakbar-zohour/SalonBookingService/internal/domain"

// ServiceResponse модель услуги каталога
type ServiceResponse struct {
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
}

// ServiceListResponse ответ со списком услуг каталога
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromCatalogServices конвертирует услуги каталога в HTTP response
func FromCatalogServices(services []domain.CatalogService) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, len(services)),
	}

	for i, service := range services {
		resp.Services[i] = ServiceResponse{
			Name:            service.Name,
			DurationMinutes: service.DurationMinutes,
		}
	}

	return resp
}
