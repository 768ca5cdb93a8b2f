package create_booking

// ClientInfo контактные данные клиента из запроса
type ClientInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Request модель запроса на создание бронирования
type Request struct {
	ItemID           string            `json:"itemId"`
	Datetime         string            `json:"datetime"` // "YYYY-MM-DDTHH:MM[:SS]"
	PerformerID      *string           `json:"performerId,omitempty"`
	Count            int               `json:"count,omitempty"`
	Client           ClientInfo        `json:"client"`
	AdditionalFields map[string]string `json:"additionalFields,omitempty"`
	Amount           string            `json:"amount,omitempty"` // переопределение цены каталога, десятичная строка
}

// Response модель ответа на создание бронирования
//
// Платные позиции бронируются только после оплаты: клиенту возвращаются
// идентификатор платежа и ссылка на страницу оплаты, само бронирование
// откладывается до вебхука. Бесплатные проводятся сразу
type Response struct {
	PaymentRequired bool     `json:"paymentRequired"`
	PaymentID       string   `json:"paymentId,omitempty"`
	CheckoutURL     string   `json:"checkoutUrl,omitempty"`
	BookingIDs      []string `json:"bookingIds,omitempty"`
	Confirmed       bool     `json:"confirmed,omitempty"`
}

// PaymentSettings платежные параметры из конфигурации сервиса
type PaymentSettings struct {
	Currency    string
	RedirectURL string
	WebhookURL  string
}
