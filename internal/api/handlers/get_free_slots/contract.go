package get_free_slots

import (
	"context"

	"github.com/m04kA/SMC-DentalCareService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetFreeSlots(ctx context.Context, doctor, dateStr string) (*models.FreeSlotsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
