package book_appointment

import (
	"time"

	"github.com/m04kA/SMC-DentalCareService/internal/domain"
	bookAppointment "github.com/m04kA/SMC-DentalCareService/internal/usecase/book_appointment"
)

// BookAppointmentRequest HTTP request model
type BookAppointmentRequest struct {
	PatientName  string `json:"patientName"`
	Email        string `json:"email"`
	ServiceQuery string `json:"serviceQuery"` // свободный текст, например "whitening"
	Doctor       string `json:"doctor"`
	Date         string `json:"date"` // "1/28/2025"
	Time         string `json:"time"` // "3:30 PM"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	Doctor                string  `json:"doctor"`
	Date                  string  `json:"date"`
	Time                  string  `json:"time"`
	ServiceName           string  `json:"serviceName"`
	ServicePrice          float64 `json:"servicePriceUah"`
	PatientName           string  `json:"patientName"`
	Email                 string  `json:"email"`
	CreatedAt             string  `json:"createdAt"`
	NotificationDelivered bool    `json:"notificationDelivered"`
}

// ValidationErrorResponse ошибка валидации поля запроса
type ValidationErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SuggestionsResponse ответ с подсказками по услугам
type SuggestionsResponse struct {
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
}

// UnavailableResponse ответ с альтернативными временами врача
type UnavailableResponse struct {
	Message        string   `json:"message"`
	AvailableSlots []string `json:"availableSlots"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookAppointmentRequest) ToUseCaseRequest() *bookAppointment.Request {
	return &bookAppointment.Request{
		PatientName:  r.PatientName,
		Email:        r.Email,
		ServiceQuery: r.ServiceQuery,
		Doctor:       r.Doctor,
		Date:         r.Date,
		Time:         r.Time,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		Doctor:                resp.Doctor,
		Date:                  resp.Date.Format(domain.DateFormat),
		Time:                  resp.Time.String(),
		ServiceName:           resp.ServiceName,
		ServicePrice:          resp.ServicePrice,
		PatientName:           resp.PatientName,
		Email:                 resp.Email,
		CreatedAt:             resp.CreatedAt.Format(time.RFC3339),
		NotificationDelivered: resp.NotificationDelivered,
	}
}
