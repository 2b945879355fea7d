package schedule

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/m04kA/SMC-DentalCareService/internal/domain"
	"github.com/m04kA/SMC-DentalCareService/pkg/types"
)

// LoadFromFile читает расписание из CSV-выгрузки клиники и строит репозиторий.
// Ожидаемый формат: строка заголовка ("Name of Doctor,Date,Time"),
// далее строки вида (имя врача, MM/DD/YYYY, hh:mm:ss AM/PM)
func LoadFromFile(path string) (*Repository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpenFile, path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 3
	reader.TrimLeadingSpace = true

	// Пропускаем заголовок
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("%w: %s: missing header: %v", ErrReadFile, path, err)
	}

	slots := make([]domain.ScheduleSlot, 0)
	line := 1

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: %s: line %d: %v", ErrReadFile, path, line, err)
		}

		doctor := strings.TrimSpace(record[0])
		if doctor == "" {
			return nil, fmt.Errorf("%w: %s: line %d: empty doctor name", ErrInvalidRow, path, line)
		}

		date, err := time.Parse(domain.DateFormat, strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: line %d: invalid date %q", ErrInvalidRow, path, line, record[1])
		}

		clock, err := types.ParseClockTime(record[2])
		if err != nil {
			return nil, fmt.Errorf("%w: %s: line %d: invalid time %q", ErrInvalidRow, path, line, record[2])
		}

		slots = append(slots, domain.ScheduleSlot{
			Doctor: doctor,
			Date:   date,
			Time:   clock,
		})
	}

	return NewRepository(slots), nil
}
