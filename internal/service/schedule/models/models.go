package models

import (
	"time"

	"github.com/m04kA/SMC-DentalCareService/internal/domain"
	"github.com/m04kA/SMC-DentalCareService/pkg/types"
)

// FreeSlotsResponse времена, на которые врач назначен в указанную дату
type FreeSlotsResponse struct {
	Doctor string
	Date   string   // в формате клиники M/D/YYYY
	Slots  []string // в порядке исходной выгрузки, формат h:mm AM/PM
}

// NewFreeSlotsResponse конвертирует список слотов в модель ответа
func NewFreeSlotsResponse(doctor string, date time.Time, slots []types.ClockTime) *FreeSlotsResponse {
	times := make([]string, len(slots))
	for i, slot := range slots {
		times[i] = slot.String()
	}

	return &FreeSlotsResponse{
		Doctor: doctor,
		Date:   date.Format(domain.DateFormat),
		Slots:  times,
	}
}
