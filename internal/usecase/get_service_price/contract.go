package get_service_price

import (
	"github.com/m04kA/SMC-DentalCareService/internal/domain"
)

// ServiceCatalog интерфейс каталога услуг
type ServiceCatalog interface {
	FindBestMatch(query string) (*domain.DentalService, error)
	Suggest(query string) []domain.DentalService
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
