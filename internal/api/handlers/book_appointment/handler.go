package book_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DentalCareService/internal/api/handlers"
	bookAppointment "github.com/m04kA/SMC-DentalCareService/internal/usecase/book_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgServiceNotMatched  = "услуга не найдена, уточните запрос"
	msgSlotAlreadyBooked  = "этот слот уже забронирован, выберите другое время"
	msgSlotUnavailable    = "выбранный слот недоступен"
)

type Handler struct {
	useCase BookAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase BookAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		// Обработка ошибок use case
		var validationErr *bookAppointment.ValidationError
		var unmatchedErr *bookAppointment.ServiceUnmatchedError
		var unavailableErr *bookAppointment.SlotUnavailableError

		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /appointments - Validation failed: field=%s", validationErr.Field)
			handlers.RespondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Field:   validationErr.Field,
				Message: validationErr.Message,
			})

		case errors.As(err, &unmatchedErr):
			h.logger.Warn("POST /appointments - Service not matched: query=%q", unmatchedErr.Query)
			suggestions := make([]string, len(unmatchedErr.Suggestions))
			for i, svc := range unmatchedErr.Suggestions {
				suggestions[i] = svc.Name
			}
			handlers.RespondJSON(w, http.StatusNotFound, SuggestionsResponse{
				Message:     msgServiceNotMatched,
				Suggestions: suggestions,
			})

		case errors.Is(err, bookAppointment.ErrSlotAlreadyBooked):
			h.logger.Warn("POST /appointments - Slot already booked: doctor=%s, date=%s, time=%s",
				req.Doctor, req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgSlotAlreadyBooked)

		case errors.As(err, &unavailableErr):
			h.logger.Warn("POST /appointments - Slot unavailable: doctor=%s, date=%s, time=%s",
				req.Doctor, req.Date, req.Time)
			slots := make([]string, len(unavailableErr.FreeSlots))
			for i, slot := range unavailableErr.FreeSlots {
				slots[i] = slot.String()
			}
			handlers.RespondJSON(w, http.StatusConflict, UnavailableResponse{
				Message:        msgSlotUnavailable,
				AvailableSlots: slots,
			})

		default:
			h.logger.Error("POST /appointments - Failed to book appointment: doctor=%s, date=%s, time=%s, error=%v",
				req.Doctor, req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment booked: doctor=%s, date=%s, time=%s, service=%s",
		result.Doctor, req.Date, req.Time, result.ServiceName)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
