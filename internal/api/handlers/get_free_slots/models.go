package get_free_slots

import (
	"github.com/m04kA/SMC-DentalCareService/internal/service/schedule/models"
)

// FreeSlotsResponse HTTP response model
type FreeSlotsResponse struct {
	Doctor string   `json:"doctor"`
	Date   string   `json:"date"`
	Slots  []string `json:"slots"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.FreeSlotsResponse) *FreeSlotsResponse {
	return &FreeSlotsResponse{
		Doctor: resp.Doctor,
		Date:   resp.Date,
		Slots:  resp.Slots,
	}
}
