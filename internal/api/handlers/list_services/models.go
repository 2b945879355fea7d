package list_services

import (
	"github.com/m04kA/SMC-DentalCareService/internal/service/catalog/models"
)

// ServiceListResponse HTTP response model
type ServiceListResponse struct {
	Services []ServiceInfo `json:"services"`
}

// ServiceInfo услуга из прайс-листа
type ServiceInfo struct {
	Name     string  `json:"name"`
	PriceUAH float64 `json:"priceUah"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ServiceListResponse) *ServiceListResponse {
	services := make([]ServiceInfo, len(resp.Services))
	for i, svc := range resp.Services {
		services[i] = ServiceInfo{
			Name:     svc.Name,
			PriceUAH: svc.PriceUAH,
		}
	}
	return &ServiceListResponse{Services: services}
}
