package ledger

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-DentalCareService/internal/domain"
	"github.com/m04kA/SMC-DentalCareService/pkg/types"
)

// slotKey пара (дата, время) занятого слота
type slotKey struct {
	date string // domain.DateKeyFormat
	time types.ClockTime
}

// Ledger реестр закрепленных бронирований по врачам на время жизни процесса.
// Инвариант: пара (дата, время) встречается у врача не более одного раза.
// Записи никогда не удаляются — отмена бронирования вне зоны ответственности сервиса.
//
// Commit — единственная операция записи и единственное место, где проверка
// и вставка обязаны быть неделимыми: это защита от двойного бронирования
// при параллельных запросах. Один мьютекс на весь реестр достаточен при
// ожидаемой нагрузке.
type Ledger struct {
	mu     sync.Mutex
	booked map[string]map[slotKey]struct{}
}

// NewLedger создает пустой реестр
func NewLedger() *Ledger {
	return &Ledger{
		booked: make(map[string]map[slotKey]struct{}),
	}
}

// IsTaken сообщает, закреплен ли слот (дата, время) за врачом
func (l *Ledger) IsTaken(doctor string, date time.Time, t types.ClockTime) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.isTakenLocked(doctor, date, t)
}

// Commit атомарно проверяет и закрепляет слот за врачом.
// Если слот уже занят, возвращает ErrSlotAlreadyTaken — проигравший гонку
// запрос получает тот же результат, что и при обычной проверке занятости.
func (l *Ledger) Commit(doctor string, date time.Time, t types.ClockTime) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.isTakenLocked(doctor, date, t) {
		return ErrSlotAlreadyTaken
	}

	slots, ok := l.booked[doctor]
	if !ok {
		slots = make(map[slotKey]struct{})
		l.booked[doctor] = slots
	}
	slots[keyFor(date, t)] = struct{}{}

	return nil
}

func (l *Ledger) isTakenLocked(doctor string, date time.Time, t types.ClockTime) bool {
	slots, ok := l.booked[doctor]
	if !ok {
		return false
	}
	_, taken := slots[keyFor(date, t)]
	return taken
}

func keyFor(date time.Time, t types.ClockTime) slotKey {
	return slotKey{
		date: date.Format(domain.DateKeyFormat),
		time: t,
	}
}
