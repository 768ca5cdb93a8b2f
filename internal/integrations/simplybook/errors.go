package simplybook

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthentication возвращается, когда провайдер не выдал токен
	// (некорректные учетные данные или ответ без поля токена)
	ErrAuthentication = errors.New("simplybook client: authentication failed")

	// ErrTransport возвращается при сетевых ошибках: timeout, DNS, 5xx
	// Позволяет резолверу доступности отличать "провайдер недоступен"
	// от "провайдер отклонил вызов"
	ErrTransport = errors.New("simplybook client: transport error")

	// ErrUpstreamRejected возвращается, когда провайдер вернул структурированную ошибку
	ErrUpstreamRejected = errors.New("simplybook client: upstream rejected the call")

	// ErrInvalidResponse возвращается при некорректном ответе провайдера
	ErrInvalidResponse = errors.New("simplybook client: invalid response")
)

// RPCError структурированная ошибка JSON-RPC от провайдера
// Сохраняет код и сообщение провайдера для диагностики
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error реализует интерфейс error
func (e *RPCError) Error() string {
	return fmt.Sprintf("simplybook rpc error: code=%d message=%s", e.Code, e.Message)
}

// Unwrap позволяет проверять RPCError через errors.Is(err, ErrUpstreamRejected)
func (e *RPCError) Unwrap() error {
	return ErrUpstreamRejected
}
