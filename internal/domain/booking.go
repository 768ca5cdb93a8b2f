package domain

import "time"

// ClientData данные клиента для передачи провайдеру расписаний
// Клиент идентифицируется по email: перед созданием выполняется поиск
type ClientData struct {
	Name  string
	Email string
	Phone string
}

// PendingBooking отложенный запрос на бронирование, ожидающий оплаты
// Ключом выступает идентификатор платежа внешнего платежного провайдера.
// Хранится только в памяти процесса и теряется при его перезапуске —
// осознанное ограничение текущей архитектуры, а не дефект
type PendingBooking struct {
	ServiceID        string
	PerformerID      *string
	Datetime         string // ISO-подобная строка "YYYY-MM-DDTHH:MM[:SS]"
	Client           ClientData
	AdditionalFields map[string]string
	Count            int

	CreatedAt time.Time
}

// ReservationResult результат подтвержденного бронирования у провайдера
type ReservationResult struct {
	BookingIDs []string
	Confirmed  bool // true, если провайдер потребовал и получил криптографическое подтверждение
}
