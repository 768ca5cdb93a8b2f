package mollie

// Статусы платежа провайдера
const (
	StatusOpen     = "open"
	StatusPending  = "pending"
	StatusPaid     = "paid"
	StatusFailed   = "failed"
	StatusCanceled = "canceled"
	StatusExpired  = "expired"
)

// Amount денежная сумма: десятичная строка + код валюты
type Amount struct {
	Value    string `json:"value"` // "49.00"
	Currency string `json:"currency"`
}

// CreatePaymentRequest запрос на создание платежной сессии
type CreatePaymentRequest struct {
	Amount      Amount            `json:"amount"`
	Description string            `json:"description"`
	RedirectURL string            `json:"redirectUrl"`
	WebhookURL  string            `json:"webhookUrl"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Payment платеж провайдера
type Payment struct {
	ID          string            `json:"id"`
	Status      string            `json:"status"`
	Amount      Amount            `json:"amount"`
	Description string            `json:"description"`
	Metadata    map[string]string `json:"metadata"`
	Links       PaymentLinks      `json:"_links"`
}

// PaymentLinks ссылки платежа
type PaymentLinks struct {
	Checkout *Link `json:"checkout,omitempty"`
}

// Link одиночная ссылка
type Link struct {
	Href string `json:"href"`
}

// CheckoutURL возвращает URL страницы оплаты (пустая строка, если недоступен)
func (p *Payment) CheckoutURL() string {
	if p.Links.Checkout == nil {
		return ""
	}
	return p.Links.Checkout.Href
}

// IsPaid возвращает true, если платеж оплачен
func (p *Payment) IsPaid() bool {
	return p.Status == StatusPaid
}

// IsTerminal возвращает true, если платеж находится в конечном неоплаченном состоянии
func (p *Payment) IsTerminal() bool {
	return p.Status == StatusFailed || p.Status == StatusCanceled || p.Status == StatusExpired
}

// errorResponse модель ошибки провайдера
type errorResponse struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}
