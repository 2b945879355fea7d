package get_service_price

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DentalCareService/internal/domain"
)

var (
	// ErrServiceUnmatched возвращается, когда запрос не похож ни на одну услугу
	ErrServiceUnmatched = errors.New("get_service_price: service not matched")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_service_price: internal error")
)

// ServiceUnmatchedError несет подсказки для повторного запроса.
// Пустой список подсказок — повод показать пациенту полный прайс-лист
type ServiceUnmatchedError struct {
	Query       string
	Suggestions []domain.DentalService
}

func (e *ServiceUnmatchedError) Error() string {
	return fmt.Sprintf("%v: query %q, %d suggestions", ErrServiceUnmatched, e.Query, len(e.Suggestions))
}

func (e *ServiceUnmatchedError) Unwrap() error {
	return ErrServiceUnmatched
}
