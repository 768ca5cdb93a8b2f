package pending

import "errors"

var (
	// ErrNotFound возвращается, когда отложенное бронирование не найдено
	ErrNotFound = errors.New("pending.store: pending booking not found")

	// ErrAlreadyExists возвращается при повторной регистрации того же платежа
	ErrAlreadyExists = errors.New("pending.store: pending booking already registered")
)
