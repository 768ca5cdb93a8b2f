package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleGateway/internal/domain"
	"github.com/m04kA/SMC-ScheduleGateway/internal/integrations/mollie"
	bookingmodels "github.com/m04kA/SMC-ScheduleGateway/internal/service/bookings/models"
)

// CatalogService интерфейс сервиса каталога
type CatalogService interface {
	GetItem(ctx context.Context, itemID string) (*domain.BookableItem, error)
}

// PaymentClient интерфейс клиента платежного провайдера
type PaymentClient interface {
	CreatePayment(ctx context.Context, req *mollie.CreatePaymentRequest) (*mollie.Payment, error)
}

// ReservationService интерфейс сервиса резервирования
type ReservationService interface {
	Reserve(ctx context.Context, req *bookingmodels.ReserveRequest) (*domain.ReservationResult, error)
}

// PendingStore интерфейс хранилища отложенных бронирований
type PendingStore interface {
	Put(paymentID string, booking *domain.PendingBooking) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
