package bookings

import (
	"context"

	"github.com/m04kA/SMC-ScheduleGateway/internal/integrations/simplybook"
)

// SchedulingClient интерфейс клиента провайдера расписаний
type SchedulingClient interface {
	GetClientList(ctx context.Context, email string) ([]map[string]interface{}, error)
	AddClient(ctx context.Context, client map[string]interface{}) (string, error)
	GetAvailableUnits(ctx context.Context, serviceID, datetime string, count int) ([]string, error)
	Book(ctx context.Context, req *simplybook.BookRequest) (*simplybook.BookResult, error)
	ConfirmBook(ctx context.Context, bookingID, signature string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
