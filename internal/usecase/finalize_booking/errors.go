package finalize_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("finalize_booking: invalid input data")

	// ErrPaymentNotFound возвращается, когда платеж неизвестен платежному провайдеру
	ErrPaymentNotFound = errors.New("finalize_booking: payment not found")

	// ErrPaymentNotPaid возвращается, когда платеж не находится в статусе paid
	ErrPaymentNotPaid = errors.New("finalize_booking: payment is not paid")

	// ErrNoPendingBooking возвращается, когда для оплаченного платежа
	// нет отложенного бронирования
	ErrNoPendingBooking = errors.New("finalize_booking: no pending booking for this payment")

	// ErrReservationFailed возвращается, когда платеж оплачен, но бронирование
	// у провайдера расписаний не прошло. Платеж при этом НЕ помечается
	// обработанным: повторная доставка вебхука даст еще одну попытку
	ErrReservationFailed = errors.New("finalize_booking: payment is paid but reservation failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("finalize_booking: internal error")
)
