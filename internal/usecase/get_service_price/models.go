package get_service_price

// Request модель запроса цены услуги
type Request struct {
	Query string // свободный текст пациента
}

// Response модель ответа с разрешенной услугой
type Response struct {
	ServiceName string  // название услуги в исходном регистре
	PriceUAH    float64 // цена в гривнах
}
