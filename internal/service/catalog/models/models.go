package models

import (
	"github.com/m04kA/SMC-DentalCareService/internal/domain"
)

// ServiceInfo услуга из прайс-листа
type ServiceInfo struct {
	Name     string
	PriceUAH float64
}

// ServiceListResponse полный прайс-лист в порядке каталога
type ServiceListResponse struct {
	Services []ServiceInfo
}

// FromDomainServices конвертирует доменные услуги в модель ответа
func FromDomainServices(services []domain.DentalService) *ServiceListResponse {
	result := make([]ServiceInfo, len(services))
	for i, svc := range services {
		result[i] = ServiceInfo{
			Name:     svc.Name,
			PriceUAH: svc.PriceUAH,
		}
	}
	return &ServiceListResponse{Services: result}
}
