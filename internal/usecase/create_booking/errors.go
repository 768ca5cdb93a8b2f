package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrItemNotFound возвращается, когда позиция каталога не найдена
	ErrItemNotFound = errors.New("create_booking: item not found")

	// ErrItemNotBookable возвращается, когда позиция скрыта или отключена у провайдера
	ErrItemNotBookable = errors.New("create_booking: item is not bookable")

	// ErrPaymentCreation возвращается, когда платежная сессия не создалась
	ErrPaymentCreation = errors.New("create_booking: failed to create payment")

	// ErrReservationFailed возвращается, когда бесплатное бронирование не прошло у провайдера
	ErrReservationFailed = errors.New("create_booking: reservation failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
