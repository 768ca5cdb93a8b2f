package create_booking

import (
	createBooking "github.com/m04kA/SMC-ScheduleGateway/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ItemID           string            `json:"itemId"`
	Datetime         string            `json:"datetime"` // "2025-10-15T10:00"
	PerformerID      *string           `json:"performerId,omitempty"`
	Count            int               `json:"count,omitempty"`
	Client           ClientRequest     `json:"client"`
	AdditionalFields map[string]string `json:"additionalFields,omitempty"`
	Amount           string            `json:"amount,omitempty"`
}

// ClientRequest контактные данные клиента
type ClientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	PaymentRequired bool     `json:"paymentRequired"`
	PaymentID       string   `json:"paymentId,omitempty"`
	CheckoutURL     string   `json:"checkoutUrl,omitempty"`
	BookingIDs      []string `json:"bookingIds,omitempty"`
	Confirmed       bool     `json:"confirmed,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		ItemID:      r.ItemID,
		Datetime:    r.Datetime,
		PerformerID: r.PerformerID,
		Count:       r.Count,
		Client: createBooking.ClientInfo{
			Name:  r.Client.Name,
			Email: r.Client.Email,
			Phone: r.Client.Phone,
		},
		AdditionalFields: r.AdditionalFields,
		Amount:           r.Amount,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		PaymentRequired: resp.PaymentRequired,
		PaymentID:       resp.PaymentID,
		CheckoutURL:     resp.CheckoutURL,
		BookingIDs:      resp.BookingIDs,
		Confirmed:       resp.Confirmed,
	}
}
