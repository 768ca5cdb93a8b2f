package payment_webhook

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	finalizeBooking "github.com/m04kA/SMC-ScheduleGateway/internal/usecase/finalize_booking"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	responses []*finalizeBooking.Response
	errs      []error
	calls     int
	lastID    string
}

func (f *fakeUseCase) Execute(ctx context.Context, req *finalizeBooking.Request) (*finalizeBooking.Response, error) {
	idx := f.calls
	f.calls++
	f.lastID = req.PaymentID

	var resp *finalizeBooking.Response
	var err error
	if idx < len(f.responses) {
		resp = f.responses[idx]
	}
	if idx < len(f.errs) {
		err = f.errs[idx]
	}
	return resp, err
}

func deliverWebhook(t *testing.T, handler *Handler, paymentID string) *httptest.ResponseRecorder {
	t.Helper()

	form := url.Values{}
	if paymentID != "" {
		form.Set("id", paymentID)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/payment", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	recorder := httptest.NewRecorder()
	handler.Handle(recorder, req)
	return recorder
}

func TestHandler_SuccessfulDelivery(t *testing.T) {
	uc := &fakeUseCase{responses: []*finalizeBooking.Response{
		{Status: finalizeBooking.StatusConfirmed, PaymentID: "tr_abc"},
	}}
	handler := NewHandler(uc, nopLogger{})

	recorder := deliverWebhook(t, handler, "tr_abc")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "tr_abc", uc.lastID)
}

func TestHandler_DuplicateDeliveryIsAcknowledged(t *testing.T) {
	uc := &fakeUseCase{responses: []*finalizeBooking.Response{
		{Status: finalizeBooking.StatusConfirmed, PaymentID: "tr_abc"},
		{Status: finalizeBooking.StatusAlreadyProcessed, PaymentID: "tr_abc"},
	}}
	handler := NewHandler(uc, nopLogger{})

	first := deliverWebhook(t, handler, "tr_abc")
	second := deliverWebhook(t, handler, "tr_abc")

	// Обе доставки подтверждаются, бронирование проведено один раз (см. usecase)
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, 2, uc.calls)
}

func TestHandler_NonActionableNotificationsAreAcknowledged(t *testing.T) {
	for _, err := range []error{
		finalizeBooking.ErrPaymentNotPaid,
		finalizeBooking.ErrPaymentNotFound,
		finalizeBooking.ErrNoPendingBooking,
	} {
		uc := &fakeUseCase{errs: []error{err}}
		handler := NewHandler(uc, nopLogger{})

		recorder := deliverWebhook(t, handler, "tr_abc")
		assert.Equal(t, http.StatusOK, recorder.Code, err.Error())
	}
}

func TestHandler_ReservationFailureTriggersRetry(t *testing.T) {
	uc := &fakeUseCase{errs: []error{finalizeBooking.ErrReservationFailed}}
	handler := NewHandler(uc, nopLogger{})

	// Провайдер повторяет доставку при 5xx — наш механизм восстановления
	recorder := deliverWebhook(t, handler, "tr_abc")
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestHandler_MissingPaymentID(t *testing.T) {
	uc := &fakeUseCase{}
	handler := NewHandler(uc, nopLogger{})

	recorder := deliverWebhook(t, handler, "")
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Zero(t, uc.calls)
}
