package catalog

import (
	"context"
	"encoding/json"
)

// SchedulingClient интерфейс клиента провайдера расписаний
type SchedulingClient interface {
	GetEventList(ctx context.Context) (json.RawMessage, error)
	GetServiceListPublic(ctx context.Context) (json.RawMessage, error)
	GetUnitList(ctx context.Context) (json.RawMessage, error)
	GetWorkCalendar(ctx context.Context, year, month int, unitID *string) (map[string]interface{}, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
