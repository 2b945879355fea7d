package get_service_price

import (
	getServicePrice "github.com/m04kA/SMC-DentalCareService/internal/usecase/get_service_price"
)

// ServicePriceResponse HTTP response model
type ServicePriceResponse struct {
	Service  string  `json:"service"`
	PriceUAH float64 `json:"priceUah"`
}

// SuggestionsResponse ответ с подсказками по услугам
type SuggestionsResponse struct {
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getServicePrice.Response) *ServicePriceResponse {
	return &ServicePriceResponse{
		Service:  resp.ServiceName,
		PriceUAH: resp.PriceUAH,
	}
}
