package book_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DentalCareService/internal/domain"
	"github.com/m04kA/SMC-DentalCareService/internal/integrations/webhook"
	"github.com/m04kA/SMC-DentalCareService/pkg/types"
)

// ServiceCatalog интерфейс каталога услуг
type ServiceCatalog interface {
	FindBestMatch(query string) (*domain.DentalService, error)
	Suggest(query string) []domain.DentalService
}

// ScheduleStore интерфейс хранилища расписания врачей
type ScheduleStore interface {
	IsAvailable(doctor string, date time.Time, t types.ClockTime) bool
	FreeSlotsFor(doctor string, date time.Time) []types.ClockTime
}

// BookingLedger интерфейс реестра закрепленных бронирований
type BookingLedger interface {
	IsTaken(doctor string, date time.Time, t types.ClockTime) bool
	Commit(doctor string, date time.Time, t types.ClockTime) error
}

// NotificationSink интерфейс внешнего приемника уведомлений о бронированиях
type NotificationSink interface {
	Send(ctx context.Context, event *webhook.Event) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
