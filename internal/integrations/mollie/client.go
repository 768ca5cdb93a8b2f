package mollie

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsObserver интерфейс для фиксации метрик внешних вызовов
type MetricsObserver interface {
	ObserveUpstream(provider, method, outcome string)
}

const providerName = "mollie"

// Client клиент REST API платежного провайдера
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	metrics    MetricsObserver
	log        Logger
}

// NewClient создает новый экземпляр клиента платежного провайдера
func NewClient(baseURL, apiKey string, timeout time.Duration, metrics MetricsObserver, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		log:     log,
	}
}

// CreatePayment создает платежную сессию и возвращает платеж со ссылкой на оплату
func (c *Client) CreatePayment(ctx context.Context, req *CreatePaymentRequest) (*Payment, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/payments", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.observe("createPayment", "transport_error")
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	payment, err := c.decodePayment(resp, http.StatusCreated)
	if err != nil {
		c.observe("createPayment", "rejected")
		return nil, err
	}

	c.observe("createPayment", "ok")
	c.log.Info("mollie: payment created id=%s amount=%s %s",
		payment.ID, payment.Amount.Value, payment.Amount.Currency)
	return payment, nil
}

// GetPayment возвращает актуальное состояние платежа
// Вебхук провайдера передает только идентификатор: статус всегда
// перезапрашивается здесь и только он считается достоверным
func (c *Client) GetPayment(ctx context.Context, paymentID string) (*Payment, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/payments/"+url.PathEscape(paymentID), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.observe("getPayment", "transport_error")
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	payment, err := c.decodePayment(resp, http.StatusOK)
	if err != nil {
		c.observe("getPayment", "rejected")
		return nil, err
	}

	c.observe("getPayment", "ok")
	return payment, nil
}

// decodePayment обрабатывает статус-коды и парсит платеж из ответа
func (c *Client) decodePayment(resp *http.Response, wantStatus int) (*Payment, error) {
	switch resp.StatusCode {
	case wantStatus:
		// Продолжаем обработку
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case http.StatusNotFound:
		return nil, ErrPaymentNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		var apiErr errorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Title != "" {
			return nil, fmt.Errorf("%w: status %d: %s: %s",
				ErrInvalidResponse, resp.StatusCode, apiErr.Title, apiErr.Detail)
		}
		return nil, fmt.Errorf("%w: unexpected status code %d: %s",
			ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var payment Payment
	if err := json.NewDecoder(resp.Body).Decode(&payment); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if payment.ID == "" {
		return nil, fmt.Errorf("%w: response has no payment id", ErrInvalidResponse)
	}

	return &payment, nil
}

func (c *Client) observe(method, outcome string) {
	if c.metrics != nil {
		c.metrics.ObserveUpstream(providerName, method, outcome)
	}
}
