package mollie

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestClient_CreatePayment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/payments", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req CreatePaymentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "49.00", req.Amount.Value)
		assert.Equal(t, "EUR", req.Amount.Currency)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{
			"id": "tr_abc123",
			"status": "open",
			"amount": {"value": "49.00", "currency": "EUR"},
			"_links": {"checkout": {"href": "https://pay.example/tr_abc123"}}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", time.Second, nil, nopLogger{})
	payment, err := client.CreatePayment(context.Background(), &CreatePaymentRequest{
		Amount:      Amount{Value: "49.00", Currency: "EUR"},
		Description: "Haircut",
	})
	require.NoError(t, err)
	assert.Equal(t, "tr_abc123", payment.ID)
	assert.Equal(t, StatusOpen, payment.Status)
	assert.Equal(t, "https://pay.example/tr_abc123", payment.CheckoutURL())
}

func TestClient_GetPayment(t *testing.T) {
	t.Run("paid payment", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/payments/tr_abc123", r.URL.Path)
			_, _ = w.Write([]byte(`{"id":"tr_abc123","status":"paid","amount":{"value":"49.00","currency":"EUR"}}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-key", time.Second, nil, nopLogger{})
		payment, err := client.GetPayment(context.Background(), "tr_abc123")
		require.NoError(t, err)
		assert.True(t, payment.IsPaid())
		assert.False(t, payment.IsTerminal())
	})

	t.Run("unknown payment", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-key", time.Second, nil, nopLogger{})
		_, err := client.GetPayment(context.Background(), "tr_nope")
		assert.ErrorIs(t, err, ErrPaymentNotFound)
	})

	t.Run("bad api key", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client := NewClient(server.URL, "bad-key", time.Second, nil, nopLogger{})
		_, err := client.GetPayment(context.Background(), "tr_abc123")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("provider error body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"status":422,"title":"Unprocessable Entity","detail":"The amount is invalid"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-key", time.Second, nil, nopLogger{})
		_, err := client.GetPayment(context.Background(), "tr_abc123")
		require.ErrorIs(t, err, ErrInvalidResponse)
		assert.Contains(t, err.Error(), "Unprocessable Entity")
	})

	t.Run("response without id", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"paid"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-key", time.Second, nil, nopLogger{})
		_, err := client.GetPayment(context.Background(), "tr_abc123")
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})
}

func TestPayment_Statuses(t *testing.T) {
	for _, status := range []string{StatusFailed, StatusCanceled, StatusExpired} {
		p := &Payment{ID: "tr_x", Status: status}
		assert.True(t, p.IsTerminal(), status)
		assert.False(t, p.IsPaid(), status)
	}

	open := &Payment{ID: "tr_x", Status: StatusOpen}
	assert.False(t, open.IsTerminal())
	assert.Empty(t, open.CheckoutURL())
}
