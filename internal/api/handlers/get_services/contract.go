package get_services

import "github.com/aliakbar-zohour/SalonBookingService/internal/domain"

type ServiceCatalog interface {
	Services() []domain.CatalogService
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
