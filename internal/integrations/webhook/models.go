package webhook

// Event полезная нагрузка уведомления о созданном бронировании.
// Дата и время передаются в том виде, в котором их ввел пациент.
type Event struct {
	PatientName string `json:"patient_name"`
	Email       string `json:"email"`
	Service     string `json:"service"`
	Doctor      string `json:"doctor"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}
