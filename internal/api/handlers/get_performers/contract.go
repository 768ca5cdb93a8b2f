package get_performers

import (
	"context"

	"github.com/m04kA/SMC-ScheduleGateway/internal/domain"
)

// CatalogService интерфейс сервиса каталога
type CatalogService interface {
	ListPerformers(ctx context.Context) ([]*domain.Performer, error)
	WorkCalendar(ctx context.Context, year, month int, performerID *string) (map[string]interface{}, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
