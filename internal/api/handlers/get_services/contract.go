package get_services

import (
	"context"

	"github.com/m04kA/SMC-ScheduleGateway/internal/domain"
)

// CatalogService интерфейс сервиса каталога
type CatalogService interface {
	ListItems(ctx context.Context, forceRefresh bool) ([]*domain.BookableItem, error)
	GetItem(ctx context.Context, itemID string) (*domain.BookableItem, error)
	ListByCategory(ctx context.Context, categoryID string) ([]*domain.BookableItem, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
