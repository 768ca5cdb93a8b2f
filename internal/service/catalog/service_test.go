package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(format string, v ...interface{}) {}
func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeClient struct {
	eventList       json.RawMessage
	eventListErr    error
	eventListCalls  int
	publicList      json.RawMessage
	publicListErr   error
	publicListCalls int
	unitList        json.RawMessage
	unitListErr     error
	calendar        map[string]interface{}
	calendarErr     error
}

func (f *fakeClient) GetEventList(ctx context.Context) (json.RawMessage, error) {
	f.eventListCalls++
	return f.eventList, f.eventListErr
}

func (f *fakeClient) GetServiceListPublic(ctx context.Context) (json.RawMessage, error) {
	f.publicListCalls++
	return f.publicList, f.publicListErr
}

func (f *fakeClient) GetUnitList(ctx context.Context) (json.RawMessage, error) {
	return f.unitList, f.unitListErr
}

func (f *fakeClient) GetWorkCalendar(ctx context.Context, year, month int, unitID *string) (map[string]interface{}, error) {
	return f.calendar, f.calendarErr
}

func TestService_ListItems_Cache(t *testing.T) {
	client := &fakeClient{
		eventList: json.RawMessage(`[{"id":"1","name":"Cut"}]`),
		unitList:  json.RawMessage(`[]`),
	}
	svc := NewService(client, 5*time.Minute, nopLogger{})

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	_, err := svc.ListItems(context.Background(), false)
	require.NoError(t, err)
	_, err = svc.ListItems(context.Background(), false)
	require.NoError(t, err)

	// Повторный вызов внутри TTL обслуживается из кэша
	assert.Equal(t, 1, client.eventListCalls)

	// Истечение TTL приводит к перезапросу
	now = now.Add(6 * time.Minute)
	_, err = svc.ListItems(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 2, client.eventListCalls)

	// Принудительное обновление игнорирует TTL
	_, err = svc.ListItems(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, 3, client.eventListCalls)
}

func TestService_FallbackToPublicList(t *testing.T) {
	client := &fakeClient{
		eventListErr: errors.New("token rejected"),
		publicList:   json.RawMessage(`{"3":{"name":"Color"}}`),
		unitList:     json.RawMessage(`[]`),
	}
	svc := NewService(client, time.Minute, nopLogger{})

	items, err := svc.ListItems(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "3", items[0].ID)
	assert.Equal(t, 1, client.publicListCalls)
}

func TestService_AllSourcesFail(t *testing.T) {
	client := &fakeClient{
		eventListErr:  errors.New("down"),
		publicListErr: errors.New("also down"),
	}
	svc := NewService(client, time.Minute, nopLogger{})

	_, err := svc.ListItems(context.Background(), false)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestService_GetItem(t *testing.T) {
	client := &fakeClient{
		eventList: json.RawMessage(`[{"id":"1","name":"Cut"},{"id":"2","name":"Color","category_id":"5"}]`),
		unitList:  json.RawMessage(`[]`),
	}
	svc := NewService(client, time.Minute, nopLogger{})

	item, err := svc.GetItem(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Color", item.Name)

	_, err = svc.GetItem(context.Background(), "404")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestService_ListByCategory(t *testing.T) {
	client := &fakeClient{
		eventList: json.RawMessage(`[{"id":"1","category_id":"5"},{"id":"2","category_id":"5"},{"id":"3","category_id":"6"}]`),
		unitList:  json.RawMessage(`[]`),
	}
	svc := NewService(client, time.Minute, nopLogger{})

	members, err := svc.ListByCategory(context.Background(), "5")
	require.NoError(t, err)
	assert.Len(t, members, 2)

	_, err = svc.ListByCategory(context.Background(), "404")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestService_PerformersFailureIsNotFatal(t *testing.T) {
	client := &fakeClient{
		eventList:   json.RawMessage(`[{"id":"1"}]`),
		unitListErr: errors.New("units down"),
	}
	svc := NewService(client, time.Minute, nopLogger{})

	items, err := svc.ListItems(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	performers, err := svc.ListPerformers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, performers)
}

func TestService_WorkCalendar(t *testing.T) {
	client := &fakeClient{
		calendar: map[string]interface{}{"2026-09-01": map[string]interface{}{"is_day_off": "0"}},
	}
	svc := NewService(client, time.Minute, nopLogger{})

	calendar, err := svc.WorkCalendar(context.Background(), 2026, 9, nil)
	require.NoError(t, err)
	assert.Contains(t, calendar, "2026-09-01")

	client.calendarErr = errors.New("down")
	_, err = svc.WorkCalendar(context.Background(), 2026, 9, nil)
	assert.ErrorIs(t, err, ErrInternal)
}
