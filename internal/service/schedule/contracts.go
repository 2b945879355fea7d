package schedule

import (
	"time"

	"github.com/m04kA/SMC-DentalCareService/pkg/types"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	FreeSlotsFor(doctor string, date time.Time) []types.ClockTime
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
