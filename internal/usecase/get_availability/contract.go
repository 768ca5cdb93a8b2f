package get_availability

import (
	"context"
	"encoding/json"

	"github.com/m04kA/SMC-ScheduleGateway/internal/domain"
)

// CatalogService интерфейс сервиса каталога
type CatalogService interface {
	GetItem(ctx context.Context, itemID string) (*domain.BookableItem, error)
	ListByCategory(ctx context.Context, categoryID string) ([]*domain.BookableItem, error)
}

// SchedulingClient интерфейс клиента провайдера расписаний
type SchedulingClient interface {
	GetStartTimeMatrix(ctx context.Context, dateFrom, dateTo, serviceID string, unitID *string, count int) (map[string]json.RawMessage, error)
	GetEventListPublic(ctx context.Context, dateFrom, dateTo *string) ([]map[string]interface{}, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
