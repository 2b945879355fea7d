package get_service_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DentalCareService/internal/infra/storage/catalog"
)

// UseCase use case разрешения свободного текста пациента в услугу с ценой.
// Результат детерминирован: при неизменном каталоге одинаковый запрос
// всегда дает одинаковый ответ
type UseCase struct {
	serviceCatalog ServiceCatalog
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(serviceCatalog ServiceCatalog, logger Logger) *UseCase {
	return &UseCase{
		serviceCatalog: serviceCatalog,
		logger:         logger,
	}
}

// Execute выполняет поиск услуги по запросу.
// Пустой запрос не ошибка: он просто ни на что не похож и дает ErrServiceUnmatched
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetServicePrice: query=%q", req.Query)

	service, err := uc.serviceCatalog.FindBestMatch(req.Query)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			suggestions := uc.serviceCatalog.Suggest(req.Query)
			uc.logger.Info("GetServicePrice: query %q not matched, %d suggestions",
				req.Query, len(suggestions))
			return nil, &ServiceUnmatchedError{
				Query:       req.Query,
				Suggestions: suggestions,
			}
		}
		uc.logger.Error("GetServicePrice: failed to resolve query %q: %v", req.Query, err)
		return nil, fmt.Errorf("%w: failed to resolve service: %v", ErrInternal, err)
	}

	uc.logger.Info("GetServicePrice: query %q resolved to %q (%.2f UAH)",
		req.Query, service.Name, service.PriceUAH)

	return &Response{
		ServiceName: service.Name,
		PriceUAH:    service.PriceUAH,
	}, nil
}
