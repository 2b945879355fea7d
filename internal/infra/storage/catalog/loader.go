package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-DentalCareService/internal/domain"
)

// LoadFromFile читает прайс-лист из CSV-выгрузки клиники и строит репозиторий.
// Ожидаемый формат: строка заголовка ("Dental service,Price in UAH"),
// далее строки вида (название услуги, цена в гривнах)
func LoadFromFile(path string) (*Repository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpenFile, path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	// Пропускаем заголовок
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("%w: %s: missing header: %v", ErrReadFile, path, err)
	}

	services := make([]domain.DentalService, 0)
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

		name := strings.TrimSpace(record[0])
		if name == "" {
			return nil, fmt.Errorf("%w: %s: line %d: empty service name", ErrInvalidRow, path, line)
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: line %d: invalid price %q", ErrInvalidRow, path, line, record[1])
		}

		services = append(services, domain.DentalService{
			Name:     name,
			PriceUAH: price,
		})
	}

	return NewRepository(services), nil
}
