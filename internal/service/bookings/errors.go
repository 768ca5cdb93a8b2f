package bookings

import "errors"

var (
	// ErrInvalidDatetime возвращается при нераспознанной дате-времени бронирования
	ErrInvalidDatetime = errors.New("bookings: invalid booking datetime")

	// ErrNoPerformerAvailable возвращается, когда нет свободного исполнителя на выбранное время
	ErrNoPerformerAvailable = errors.New("bookings: no performer available for this slot")

	// ErrClientCreation возвращается, когда не удалось создать клиента у провайдера
	ErrClientCreation = errors.New("bookings: failed to create client")

	// ErrBookingFailed возвращается, когда провайдер не создал бронирование
	ErrBookingFailed = errors.New("bookings: booking procedure failed")

	// ErrConfirmationFailed возвращается, когда бронирование создано,
	// но подтверждение подписью не прошло
	ErrConfirmationFailed = errors.New("bookings: booking created but confirmation failed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
