package book_appointment

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DentalCareService/internal/domain"
	"github.com/m04kA/SMC-DentalCareService/pkg/types"
)

var (
	// ErrValidation возвращается при некорректном email, дате или времени
	ErrValidation = errors.New("book_appointment: invalid input")

	// ErrServiceUnmatched возвращается, когда запрос не похож ни на одну услугу
	ErrServiceUnmatched = errors.New("book_appointment: service not matched")

	// ErrSlotAlreadyBooked возвращается, когда слот уже закреплен за другим пациентом
	ErrSlotAlreadyBooked = errors.New("book_appointment: slot already booked")

	// ErrSlotUnavailable возвращается, когда врач не назначен на запрошенное время
	ErrSlotUnavailable = errors.New("book_appointment: slot unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_appointment: internal error")
)

// ValidationError ошибка валидации конкретного поля запроса.
// Разворачивается в ErrValidation для проверки через errors.Is
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrValidation, e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ServiceUnmatchedError несет подсказки для повторного запроса услуги.
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

// SlotUnavailableError несет список времен, на которые врач назначен
// в запрошенную дату, в качестве альтернативы
type SlotUnavailableError struct {
	Doctor    string
	Date      time.Time
	FreeSlots []types.ClockTime
}

func (e *SlotUnavailableError) Error() string {
	return fmt.Sprintf("%v: doctor=%s, date=%s, %d free slots",
		ErrSlotUnavailable, e.Doctor, e.Date.Format(domain.DateKeyFormat), len(e.FreeSlots))
}

func (e *SlotUnavailableError) Unwrap() error {
	return ErrSlotUnavailable
}
