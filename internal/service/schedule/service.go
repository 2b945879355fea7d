package schedule

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-DentalCareService/internal/domain"
	"github.com/m04kA/SMC-DentalCareService/internal/service/schedule/models"
)

// Service сервис чтения расписания врачей
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// GetFreeSlots возвращает времена, на которые врач назначен в указанную дату.
// Ошибка формата даты не маскируется под пустой результат
func (s *Service) GetFreeSlots(ctx context.Context, doctor, dateStr string) (*models.FreeSlotsResponse, error) {
	if strings.TrimSpace(doctor) == "" {
		s.logger.Warn("GetFreeSlots: empty doctor name")
		return nil, fmt.Errorf("%w: doctor is required", ErrInvalidInput)
	}

	date, err := time.Parse(domain.DateFormat, strings.TrimSpace(dateStr))
	if err != nil {
		s.logger.Warn("GetFreeSlots: invalid date %q", dateStr)
		return nil, fmt.Errorf("%w: %q, expected M/D/YYYY", ErrInvalidDate, dateStr)
	}

	slots := s.scheduleRepo.FreeSlotsFor(doctor, date)

	s.logger.Info("GetFreeSlots: doctor=%s, date=%s, %d slots",
		doctor, date.Format(domain.DateKeyFormat), len(slots))
	return models.NewFreeSlotsResponse(doctor, date, slots), nil
}
