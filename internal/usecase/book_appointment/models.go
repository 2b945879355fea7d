package book_appointment

import (
	"github.com/m04kA/SMC-DentalCareService/internal/domain"
)

// Request модель запроса на бронирование.
// Дата и время приходят строками в форматах клиники: M/D/YYYY и h:mm AM/PM.
// Имя пациента и имя врача — свободный ввод, без валидации
type Request struct {
	PatientName  string
	Email        string
	ServiceQuery string // свободный текст, разрешается через каталог
	Doctor       string
	Date         string
	Time         string
}

// Response модель ответа с закрепленным бронированием
type Response struct {
	domain.BookingRecord

	// NotificationDelivered сообщает, дошло ли уведомление до приемника.
	// false никогда не означает отмену бронирования
	NotificationDelivered bool
}
