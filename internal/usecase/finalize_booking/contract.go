package finalize_booking

import (
	"context"

	"github.com/m04kA/SMC-ScheduleGateway/internal/domain"
	"github.com/m04kA/SMC-ScheduleGateway/internal/integrations/mollie"
	bookingmodels "github.com/m04kA/SMC-ScheduleGateway/internal/service/bookings/models"
)

// PaymentClient интерфейс клиента платежного провайдера
type PaymentClient interface {
	GetPayment(ctx context.Context, paymentID string) (*mollie.Payment, error)
}

// ReservationService интерфейс сервиса резервирования
type ReservationService interface {
	Reserve(ctx context.Context, req *bookingmodels.ReserveRequest) (*domain.ReservationResult, error)
}

// PendingStore интерфейс хранилища отложенных бронирований
type PendingStore interface {
	Get(paymentID string) (*domain.PendingBooking, error)
	Delete(paymentID string)
}

// ProcessedStore интерфейс реестра обработанных платежей
type ProcessedStore interface {
	Mark(paymentID string)
	Contains(paymentID string) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
