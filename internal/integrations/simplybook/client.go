package simplybook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsObserver интерфейс для фиксации метрик внешних вызовов
type MetricsObserver interface {
	ObserveUpstream(provider, method, outcome string)
}

const providerName = "simplybook"

// Client клиент JSON-RPC API провайдера расписаний
//
// Провайдер разделяет процедуры на административные (требуют токен)
// и публичные (анонимные). Оба семейства используют один транспорт
type Client struct {
	baseURL      string
	companyLogin string
	apiKey       string
	httpClient   *http.Client
	tokens       *tokenCache
	requestID    atomic.Int64
	metrics      MetricsObserver
	log          Logger
}

// NewClient создает новый экземпляр клиента провайдера расписаний
// tokenTTL — консервативная доля реального времени жизни токена,
// чтобы токен не использовался после истечения даже при дрейфе часов
func NewClient(
	baseURL, companyLogin, apiKey string,
	timeout, tokenTTL time.Duration,
	metrics MetricsObserver,
	log Logger,
) *Client {
	c := &Client{
		baseURL:      baseURL,
		companyLogin: companyLogin,
		apiKey:       apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		log:     log,
	}
	c.tokens = newTokenCache(tokenTTL, c.login)
	return c
}

// CallAuthenticated выполняет административную процедуру с токеном компании
func (c *Client) CallAuthenticated(ctx context.Context, method string, params []interface{}) (json.RawMessage, error) {
	token, err := c.tokens.Get(ctx)
	if err != nil {
		return nil, err
	}

	headers := map[string]string{
		"X-Company-Login": c.companyLogin,
		"X-Token":         token,
	}
	return c.call(ctx, c.baseURL+"/admin/", headers, method, params)
}

// CallAnonymous выполняет публичную процедуру без токена
func (c *Client) CallAnonymous(ctx context.Context, method string, params []interface{}) (json.RawMessage, error) {
	headers := map[string]string{
		"X-Company-Login": c.companyLogin,
	}
	return c.call(ctx, c.baseURL+"/", headers, method, params)
}

// login запрашивает новый токен у провайдера
func (c *Client) login(ctx context.Context) (string, error) {
	c.log.Info("simplybook: requesting new token for company=%s", c.companyLogin)

	raw, err := c.call(ctx, c.baseURL+"/login/", map[string]string{}, "getToken", []interface{}{c.companyLogin, c.apiKey})
	if err != nil {
		return "", err
	}

	var token string
	if err := json.Unmarshal(raw, &token); err != nil || token == "" {
		c.log.Error("simplybook: login response has no token field")
		return "", fmt.Errorf("%w: login response has no token", ErrAuthentication)
	}

	c.log.Info("simplybook: token acquired for company=%s", c.companyLogin)
	return token, nil
}

// call выполняет один вызов JSON-RPC и разворачивает конверт ответа
func (c *Client) call(ctx context.Context, url string, headers map[string]string, method string, params []interface{}) (json.RawMessage, error) {
	if params == nil {
		params = []interface{}{}
	}

	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      c.requestID.Add(1),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInvalidResponse, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(method, "transport_error")
		return nil, fmt.Errorf("%w: method %s: %v", ErrTransport, method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.observe(method, "transport_error")
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: method %s: unexpected status code %d: %s",
			ErrTransport, method, resp.StatusCode, string(respBody))
	}

	var envelope rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		c.observe(method, "transport_error")
		return nil, fmt.Errorf("%w: method %s: failed to decode envelope: %v", ErrInvalidResponse, method, err)
	}

	if envelope.Error != nil {
		c.observe(method, "rejected")
		c.log.Warn("simplybook: method %s rejected: code=%d message=%s",
			method, envelope.Error.Code, envelope.Error.Message)
		return nil, fmt.Errorf("method %s: %w", method, envelope.Error)
	}

	c.observe(method, "ok")
	return envelope.Result, nil
}

func (c *Client) observe(method, outcome string) {
	if c.metrics != nil {
		c.metrics.ObserveUpstream(providerName, method, outcome)
	}
}

// Типизированные обертки процедур провайдера

// GetServiceListPublic возвращает сырой каталог услуг (публичная процедура)
// Форма результата зависит от конфигурации тенанта, нормализация — на вызывающей стороне
func (c *Client) GetServiceListPublic(ctx context.Context) (json.RawMessage, error) {
	return c.CallAnonymous(ctx, "getServiceListPublic", nil)
}

// GetEventListPublic возвращает список публичных событий за период
func (c *Client) GetEventListPublic(ctx context.Context, dateFrom, dateTo *string) ([]map[string]interface{}, error) {
	params := []interface{}{}
	if dateFrom != nil {
		params = append(params, *dateFrom)
		if dateTo != nil {
			params = append(params, *dateTo)
		}
	}

	raw, err := c.CallAnonymous(ctx, "getEventListPublic", params)
	if err != nil {
		return nil, err
	}
	return RecordList(raw), nil
}

// GetEventList возвращает сырой административный каталог позиций
func (c *Client) GetEventList(ctx context.Context) (json.RawMessage, error) {
	return c.CallAuthenticated(ctx, "getEventList", nil)
}

// GetUnitList возвращает сырой список исполнителей
func (c *Client) GetUnitList(ctx context.Context) (json.RawMessage, error) {
	return c.CallAuthenticated(ctx, "getUnitList", nil)
}

// GetWorkCalendar возвращает рабочий календарь на месяц
// unitID опционален: nil — календарь всей компании
func (c *Client) GetWorkCalendar(ctx context.Context, year, month int, unitID *string) (map[string]interface{}, error) {
	params := []interface{}{year, month}
	if unitID != nil {
		params = append(params, *unitID)
	}

	raw, err := c.CallAuthenticated(ctx, "getWorkCalendar", params)
	if err != nil {
		return nil, err
	}

	var calendar map[string]interface{}
	if err := json.Unmarshal(raw, &calendar); err != nil {
		return nil, fmt.Errorf("%w: getWorkCalendar: %v", ErrInvalidResponse, err)
	}
	return calendar, nil
}

// GetStartTimeMatrix возвращает матрицу стартовых времен по датам
// Значения по датам имеют неустойчивую форму, поэтому возвращаются сырыми
func (c *Client) GetStartTimeMatrix(ctx context.Context, dateFrom, dateTo, serviceID string, unitID *string, count int) (map[string]json.RawMessage, error) {
	var unit interface{}
	if unitID != nil {
		unit = *unitID
	}

	raw, err := c.CallAuthenticated(ctx, "getStartTimeMatrix",
		[]interface{}{dateFrom, dateTo, serviceID, unit, count})
	if err != nil {
		return nil, err
	}

	var matrix map[string]json.RawMessage
	if err := json.Unmarshal(raw, &matrix); err != nil {
		return nil, fmt.Errorf("%w: getStartTimeMatrix: %v", ErrInvalidResponse, err)
	}
	return matrix, nil
}

// GetAvailableUnits возвращает идентификаторы исполнителей, свободных в указанное время
func (c *Client) GetAvailableUnits(ctx context.Context, serviceID, datetime string, count int) ([]string, error) {
	raw, err := c.CallAuthenticated(ctx, "getAvailableUnits", []interface{}{serviceID, datetime, count})
	if err != nil {
		return nil, err
	}

	// Провайдер возвращает либо массив идентификаторов, либо объект id -> данные
	var asArray []interface{}
	if err := json.Unmarshal(raw, &asArray); err == nil {
		ids := make([]string, 0, len(asArray))
		for _, v := range asArray {
			if id := AsString(v); id != "" {
				ids = append(ids, id)
			}
		}
		return ids, nil
	}

	var asObject map[string]interface{}
	if err := json.Unmarshal(raw, &asObject); err == nil {
		ids := make([]string, 0, len(asObject))
		for id := range asObject {
			ids = append(ids, id)
		}
		return ids, nil
	}

	return nil, fmt.Errorf("%w: getAvailableUnits: unrecognized result shape", ErrInvalidResponse)
}

// GetClientList ищет клиентов по email
func (c *Client) GetClientList(ctx context.Context, email string) ([]map[string]interface{}, error) {
	raw, err := c.CallAuthenticated(ctx, "getClientList", []interface{}{email})
	if err != nil {
		return nil, err
	}
	return RecordList(raw), nil
}

// AddClient создает клиента у провайдера и возвращает его идентификатор
func (c *Client) AddClient(ctx context.Context, client map[string]interface{}) (string, error) {
	raw, err := c.CallAuthenticated(ctx, "addClient", []interface{}{client})
	if err != nil {
		return "", err
	}

	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", fmt.Errorf("%w: addClient: %v", ErrInvalidResponse, err)
	}

	id := AsString(v)
	if id == "" {
		// Некоторые конфигурации возвращают объект клиента вместо идентификатора
		if rec, ok := v.(map[string]interface{}); ok {
			id = AsString(rec["id"])
		}
	}
	if id == "" {
		return "", fmt.Errorf("%w: addClient: response has no client id", ErrInvalidResponse)
	}
	return id, nil
}

// Book создает бронирование у провайдера
func (c *Client) Book(ctx context.Context, req *BookRequest) (*BookResult, error) {
	raw, err := c.CallAuthenticated(ctx, "book", []interface{}{
		req.ServiceID,
		req.PerformerID,
		req.Date,
		req.Time,
		req.Client,
		req.AdditionalFields,
		req.Count,
	})
	if err != nil {
		return nil, err
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: book: %v", ErrInvalidResponse, err)
	}

	result := &BookResult{
		RequireConfirm: AsBool(payload["require_confirm"]),
	}

	if rawBookings, ok := payload["bookings"].([]interface{}); ok {
		for _, rb := range rawBookings {
			rec, ok := rb.(map[string]interface{})
			if !ok {
				continue
			}
			result.Bookings = append(result.Bookings, BookingInfo{
				ID:   AsString(rec["id"]),
				Hash: AsString(rec["hash"]),
			})
		}
	}

	// Одиночное бронирование без массива bookings
	if len(result.Bookings) == 0 {
		id := AsString(payload["id"])
		if id == "" {
			return nil, fmt.Errorf("%w: book: response has no booking id", ErrInvalidResponse)
		}
		result.Bookings = append(result.Bookings, BookingInfo{
			ID:   id,
			Hash: AsString(payload["hash"]),
		})
	}

	return result, nil
}

// ConfirmBook подтверждает бронирование подписью
func (c *Client) ConfirmBook(ctx context.Context, bookingID, signature string) error {
	_, err := c.CallAuthenticated(ctx, "confirmBook", []interface{}{bookingID, signature})
	return err
}
