package schedule

import (
	"time"

	"github.com/m04kA/SMC-DentalCareService/internal/domain"
	"github.com/m04kA/SMC-DentalCareService/pkg/types"
)

// slotKey ключ слота для индекса точного поиска
type slotKey struct {
	doctor string
	date   string // domain.DateKeyFormat
	time   types.ClockTime
}

// Repository хранит расписание клиники в памяти: по слоту на каждую строку выгрузки.
// Это множество предложений ("врач назначен"), а не занятых слотов — бронирования
// его не изменяют. Заполняется один раз при старте, далее только читается.
type Repository struct {
	slots []domain.ScheduleSlot
	index map[slotKey]struct{}
}

// NewRepository создает репозиторий поверх загруженного расписания.
// Исходный порядок слотов сохраняется для перечисления свободного времени.
func NewRepository(slots []domain.ScheduleSlot) *Repository {
	index := make(map[slotKey]struct{}, len(slots))
	for _, slot := range slots {
		index[keyFor(slot.Doctor, slot.Date, slot.Time)] = struct{}{}
	}

	return &Repository{
		slots: slots,
		index: index,
	}
}

// IsAvailable сообщает, назначен ли врач на точное сочетание даты и времени.
// Имя врача сравнивается с учетом регистра, время — с точностью до секунды.
func (r *Repository) IsAvailable(doctor string, date time.Time, t types.ClockTime) bool {
	_, ok := r.index[keyFor(doctor, date, t)]
	return ok
}

// FreeSlotsFor возвращает все времена, на которые врач назначен в указанную дату,
// в порядке следования в исходной выгрузке (сортировка не гарантируется)
func (r *Repository) FreeSlotsFor(doctor string, date time.Time) []types.ClockTime {
	dateKey := date.Format(domain.DateKeyFormat)

	result := make([]types.ClockTime, 0)
	for _, slot := range r.slots {
		if slot.Doctor == doctor && slot.Date.Format(domain.DateKeyFormat) == dateKey {
			result = append(result, slot.Time)
		}
	}
	return result
}

func keyFor(doctor string, date time.Time, t types.ClockTime) slotKey {
	return slotKey{
		doctor: doctor,
		date:   date.Format(domain.DateKeyFormat),
		time:   t,
	}
}
