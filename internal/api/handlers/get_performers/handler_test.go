package get_performers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleGateway/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeCatalog struct {
	performers []*domain.Performer
	calendar   map[string]interface{}
}

func (f *fakeCatalog) ListPerformers(ctx context.Context) ([]*domain.Performer, error) {
	return f.performers, nil
}

func (f *fakeCatalog) WorkCalendar(ctx context.Context, year, month int, performerID *string) (map[string]interface{}, error) {
	return f.calendar, nil
}

func listPerformers(t *testing.T, handler *Handler, query string) *ListResponse {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/performers"+query, nil)
	recorder := httptest.NewRecorder()
	handler.Handle(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	var resp ListResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	return &resp
}

func TestHandler_ServiceFilter(t *testing.T) {
	cat := &fakeCatalog{performers: []*domain.Performer{
		{ID: "1", Name: "Anna", ServiceIDs: []string{"7"}},
		{ID: "2", Name: "Boris", ServiceIDs: []string{"8", "9"}},
		{ID: "3", Name: "Vera"}, // без привязки — выполняет все услуги
	}}
	handler := NewHandler(cat, nopLogger{})

	t.Run("without filter returns everyone", func(t *testing.T) {
		resp := listPerformers(t, handler, "")
		assert.Len(t, resp.Performers, 3)
	})

	t.Run("filter keeps capable performers", func(t *testing.T) {
		resp := listPerformers(t, handler, "?serviceId=7")
		require.Len(t, resp.Performers, 2)
		assert.Equal(t, "1", resp.Performers[0].ID)
		assert.Equal(t, "3", resp.Performers[1].ID)
	})

	t.Run("no capable performers", func(t *testing.T) {
		cat := &fakeCatalog{performers: []*domain.Performer{
			{ID: "1", Name: "Anna", ServiceIDs: []string{"7"}},
		}}
		resp := listPerformers(t, NewHandler(cat, nopLogger{}), "?serviceId=404")
		assert.Empty(t, resp.Performers)
	})
}

func TestHandler_Calendar(t *testing.T) {
	cat := &fakeCatalog{
		performers: []*domain.Performer{{ID: "1", Name: "Anna"}},
		calendar:   map[string]interface{}{"2026-09-15": "09:00-18:00"},
	}
	handler := NewHandler(cat, nopLogger{})

	t.Run("attached on request", func(t *testing.T) {
		resp := listPerformers(t, handler, "?calendar=2026-09")
		assert.Equal(t, "09:00-18:00", resp.Calendar["2026-09-15"])
	})

	t.Run("malformed month", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/performers?calendar=september", nil)
		recorder := httptest.NewRecorder()
		handler.Handle(recorder, req)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
