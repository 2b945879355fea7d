package webhook

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("webhook client: internal error")

	// ErrDeliveryFailed возвращается, когда приемник ответил не-2xx статусом
	// или оказался недоступен. Доставка не повторяется — политика ретраев,
	// если она нужна, живет на стороне приемника
	ErrDeliveryFailed = errors.New("webhook client: delivery failed")
)
