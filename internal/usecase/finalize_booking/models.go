package finalize_booking

// Статусы результата финализации
const (
	StatusConfirmed        = "confirmed"
	StatusAlreadyProcessed = "already_processed"
)

// Request модель запроса на финализацию бронирования по платежу
type Request struct {
	PaymentID string `json:"paymentId"`
}

// Response модель ответа финализации
type Response struct {
	Status     string   `json:"status"`
	PaymentID  string   `json:"paymentId"`
	BookingIDs []string `json:"bookingIds,omitempty"`
	Confirmed  bool     `json:"confirmed,omitempty"`
}
