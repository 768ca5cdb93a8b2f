package mollie

import "errors"

var (
	// ErrPaymentNotFound возвращается, когда платеж не найден у провайдера
	ErrPaymentNotFound = errors.New("mollie client: payment not found")

	// ErrUnauthorized возвращается при некорректном API ключе
	ErrUnauthorized = errors.New("mollie client: unauthorized")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mollie client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе провайдера
	ErrInvalidResponse = errors.New("mollie client: invalid response")
)
