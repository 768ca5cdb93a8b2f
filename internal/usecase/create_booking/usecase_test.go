package create_booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleGateway/internal/domain"
	"github.com/m04kA/SMC-ScheduleGateway/internal/integrations/mollie"
	"github.com/m04kA/SMC-ScheduleGateway/internal/service/catalog"
	bookingmodels "github.com/m04kA/SMC-ScheduleGateway/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeCatalog struct {
	items map[string]*domain.BookableItem
}

func (f *fakeCatalog) GetItem(ctx context.Context, itemID string) (*domain.BookableItem, error) {
	item, ok := f.items[itemID]
	if !ok {
		return nil, catalog.ErrItemNotFound
	}
	return item, nil
}

type fakePayments struct {
	payment *mollie.Payment
	err     error
	lastReq *mollie.CreatePaymentRequest
	calls   int
}

func (f *fakePayments) CreatePayment(ctx context.Context, req *mollie.CreatePaymentRequest) (*mollie.Payment, error) {
	f.calls++
	f.lastReq = req
	return f.payment, f.err
}

type fakeReservations struct {
	result  *domain.ReservationResult
	err     error
	lastReq *bookingmodels.ReserveRequest
	calls   int
}

func (f *fakeReservations) Reserve(ctx context.Context, req *bookingmodels.ReserveRequest) (*domain.ReservationResult, error) {
	f.calls++
	f.lastReq = req
	return f.result, f.err
}

type fakePending struct {
	stored map[string]*domain.PendingBooking
	err    error
}

func (f *fakePending) Put(paymentID string, booking *domain.PendingBooking) error {
	if f.err != nil {
		return f.err
	}
	if f.stored == nil {
		f.stored = make(map[string]*domain.PendingBooking)
	}
	f.stored[paymentID] = booking
	return nil
}

func pricedItem() *domain.BookableItem {
	return &domain.BookableItem{
		ID: "7", Name: "Haircut", Price: "35.00",
		Status: domain.StatusOnline, Kind: domain.KindService,
	}
}

func freeItem() *domain.BookableItem {
	return &domain.BookableItem{
		ID: "9", Name: "Consultation",
		Status: domain.StatusOnline, Kind: domain.KindService,
	}
}

func settings() PaymentSettings {
	return PaymentSettings{
		Currency:    "EUR",
		RedirectURL: "https://shop.example/thanks",
		WebhookURL:  "https://gateway.example/api/v1/webhooks/payment",
	}
}

func validRequest() *Request {
	return &Request{
		ItemID:   "7",
		Datetime: "2026-09-15T10:00",
		Client: ClientInfo{
			Name:  "Anna",
			Email: "anna@example.com",
			Phone: "+371 20000000",
		},
	}
}

func TestUseCase_PaidItemDefersReservation(t *testing.T) {
	payments := &fakePayments{payment: &mollie.Payment{
		ID:     "tr_abc",
		Status: mollie.StatusOpen,
		Links:  mollie.PaymentLinks{Checkout: &mollie.Link{Href: "https://pay.example/tr_abc"}},
	}}
	reservations := &fakeReservations{}
	pending := &fakePending{}
	uc := NewUseCase(&fakeCatalog{items: map[string]*domain.BookableItem{"7": pricedItem()}},
		payments, reservations, pending, settings(), nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, resp.PaymentRequired)
	assert.Equal(t, "tr_abc", resp.PaymentID)
	assert.Equal(t, "https://pay.example/tr_abc", resp.CheckoutURL)
	assert.Empty(t, resp.BookingIDs)

	// Бронирование у провайдера не проводится до оплаты
	assert.Zero(t, reservations.calls)

	// Отложенный запрос сохранен под идентификатором платежа
	booking := pending.stored["tr_abc"]
	require.NotNil(t, booking)
	assert.Equal(t, "7", booking.ServiceID)
	assert.Equal(t, "2026-09-15T10:00", booking.Datetime)
	assert.Equal(t, "anna@example.com", booking.Client.Email)

	// Платеж создан с ценой каталога и параметрами из конфигурации
	assert.Equal(t, mollie.Amount{Value: "35.00", Currency: "EUR"}, payments.lastReq.Amount)
	assert.Equal(t, "Haircut", payments.lastReq.Description)
	assert.Equal(t, "https://shop.example/thanks", payments.lastReq.RedirectURL)
	assert.Equal(t, "7", payments.lastReq.Metadata["itemId"])
}

func TestUseCase_AmountOverride(t *testing.T) {
	payments := &fakePayments{payment: &mollie.Payment{ID: "tr_abc", Status: mollie.StatusOpen}}
	uc := NewUseCase(&fakeCatalog{items: map[string]*domain.BookableItem{"7": pricedItem()}},
		payments, &fakeReservations{}, &fakePending{}, settings(), nopLogger{})

	req := validRequest()
	req.Amount = "50"
	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Сумма нормализуется к двум знакам после запятой
	assert.Equal(t, "50.00", payments.lastReq.Amount.Value)
}

func TestUseCase_FreeItemReservesImmediately(t *testing.T) {
	payments := &fakePayments{}
	reservations := &fakeReservations{result: &domain.ReservationResult{
		BookingIDs: []string{"42"},
		Confirmed:  true,
	}}
	uc := NewUseCase(&fakeCatalog{items: map[string]*domain.BookableItem{"9": freeItem()}},
		payments, reservations, &fakePending{}, settings(), nopLogger{})

	req := validRequest()
	req.ItemID = "9"
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, resp.PaymentRequired)
	assert.Equal(t, []string{"42"}, resp.BookingIDs)
	assert.True(t, resp.Confirmed)
	assert.Zero(t, payments.calls)
	assert.Equal(t, "9", reservations.lastReq.ServiceID)
}

func TestUseCase_Failures(t *testing.T) {
	t.Run("item not found", func(t *testing.T) {
		uc := NewUseCase(&fakeCatalog{}, &fakePayments{}, &fakeReservations{}, &fakePending{}, settings(), nopLogger{})
		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("offline item", func(t *testing.T) {
		offline := pricedItem()
		offline.Status = domain.StatusOffline
		uc := NewUseCase(&fakeCatalog{items: map[string]*domain.BookableItem{"7": offline}},
			&fakePayments{}, &fakeReservations{}, &fakePending{}, settings(), nopLogger{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrItemNotBookable)
	})

	t.Run("payment creation failure leaves no pending booking", func(t *testing.T) {
		payments := &fakePayments{err: errors.New("gateway down")}
		pending := &fakePending{}
		uc := NewUseCase(&fakeCatalog{items: map[string]*domain.BookableItem{"7": pricedItem()}},
			payments, &fakeReservations{}, pending, settings(), nopLogger{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrPaymentCreation)
		assert.Empty(t, pending.stored)
	})

	t.Run("reservation failure on free item", func(t *testing.T) {
		reservations := &fakeReservations{err: errors.New("slot taken")}
		uc := NewUseCase(&fakeCatalog{items: map[string]*domain.BookableItem{"9": freeItem()}},
			&fakePayments{}, reservations, &fakePending{}, settings(), nopLogger{})

		req := validRequest()
		req.ItemID = "9"
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrReservationFailed)
	})
}

func TestUseCase_Validation(t *testing.T) {
	uc := NewUseCase(&fakeCatalog{}, &fakePayments{}, &fakeReservations{}, &fakePending{}, settings(), nopLogger{})

	cases := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing item id", func(r *Request) { r.ItemID = "" }},
		{"missing datetime", func(r *Request) { r.Datetime = "" }},
		{"malformed datetime", func(r *Request) { r.Datetime = "next tuesday" }},
		{"missing email", func(r *Request) { r.Client.Email = "" }},
		{"malformed email", func(r *Request) { r.Client.Email = "not-an-email" }},
		{"missing name", func(r *Request) { r.Client.Name = "" }},
		{"negative count", func(r *Request) { r.Count = -1 }},
		{"non-decimal amount", func(r *Request) { r.Amount = "a lot" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
