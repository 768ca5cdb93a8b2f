package finalize_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleGateway/internal/integrations/mollie"
	bookingmodels "github.com/m04kA/SMC-ScheduleGateway/internal/service/bookings/models"
	"github.com/m04kA/SMC-ScheduleGateway/internal/infra/storage/pending"
)

// UseCase use case финализации бронирования по оплаченному платежу
//
// Вызывается и вебхуком платежного провайдера, и клиентским запросом
// финализации: оба пути сходятся здесь и идемпотентны. Статус платежа
// никогда не берется из уведомления — только из перезапроса у провайдера.
// Для каждого платежа бронирование проводится не более одного раза
type UseCase struct {
	payments     PaymentClient
	reservations ReservationService
	pending      PendingStore
	processed    ProcessedStore
	locks        *keyedLocks
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	payments PaymentClient,
	reservations ReservationService,
	pendingStore PendingStore,
	processedStore ProcessedStore,
	logger Logger,
) *UseCase {
	return &UseCase{
		payments:     payments,
		reservations: reservations,
		pending:      pendingStore,
		processed:    processedStore,
		locks:        newKeyedLocks(),
		logger:       logger,
	}
}

// Execute выполняет финализацию бронирования по платежу
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.PaymentID == "" {
		return nil, fmt.Errorf("%w: paymentId is required", ErrInvalidInput)
	}

	// Конкурентные финализации одного платежа сериализуются:
	// ровно одна проводит бронирование, остальные видят его обработанным
	release := uc.locks.Acquire(req.PaymentID)
	defer release()

	// 1. Проверяем, не обработан ли платеж ранее
	if uc.processed.Contains(req.PaymentID) {
		uc.logger.Info("FinalizeBooking: payment=%s already processed, skipping", req.PaymentID)
		return &Response{
			Status:    StatusAlreadyProcessed,
			PaymentID: req.PaymentID,
		}, nil
	}

	// 2. Перезапрашиваем достоверный статус платежа у провайдера
	payment, err := uc.payments.GetPayment(ctx, req.PaymentID)
	if err != nil {
		if errors.Is(err, mollie.ErrPaymentNotFound) {
			uc.logger.Warn("FinalizeBooking: payment=%s unknown to provider", req.PaymentID)
			return nil, ErrPaymentNotFound
		}
		uc.logger.Error("FinalizeBooking: failed to fetch payment=%s: %v", req.PaymentID, err)
		return nil, fmt.Errorf("%w: failed to fetch payment: %v", ErrInternal, err)
	}

	// 3. Бронируем только оплаченные платежи
	if !payment.IsPaid() {
		if payment.IsTerminal() {
			// Конечное неоплаченное состояние: отложенное бронирование больше не понадобится
			uc.pending.Delete(req.PaymentID)
			uc.logger.Info("FinalizeBooking: payment=%s is terminal (%s), pending booking dropped",
				req.PaymentID, payment.Status)
		} else {
			uc.logger.Info("FinalizeBooking: payment=%s is not paid yet (%s)", req.PaymentID, payment.Status)
		}
		return nil, fmt.Errorf("%w: status=%s", ErrPaymentNotPaid, payment.Status)
	}

	// 4. Находим отложенное бронирование
	booking, err := uc.pending.Get(req.PaymentID)
	if err != nil {
		if errors.Is(err, pending.ErrNotFound) {
			uc.logger.Warn("FinalizeBooking: payment=%s is paid but has no pending booking", req.PaymentID)
			return nil, ErrNoPendingBooking
		}
		uc.logger.Error("FinalizeBooking: failed to load pending booking payment=%s: %v", req.PaymentID, err)
		return nil, fmt.Errorf("%w: failed to load pending booking: %v", ErrInternal, err)
	}

	// 5. Проводим бронирование у провайдера расписаний
	result, err := uc.reservations.Reserve(ctx, &bookingmodels.ReserveRequest{
		ServiceID:        booking.ServiceID,
		PerformerID:      booking.PerformerID,
		Datetime:         booking.Datetime,
		Client:           booking.Client,
		AdditionalFields: booking.AdditionalFields,
		Count:            booking.Count,
	})
	if err != nil {
		// Деньги списаны, брони нет: платеж НЕ помечается обработанным,
		// чтобы повторная доставка вебхука дала новую попытку
		uc.logger.Error("FinalizeBooking: payment=%s is paid but reservation failed: %v", req.PaymentID, err)
		return nil, fmt.Errorf("%w: %v", ErrReservationFailed, err)
	}

	// 6. Фиксируем обработку
	uc.processed.Mark(req.PaymentID)
	uc.pending.Delete(req.PaymentID)

	uc.logger.Info("FinalizeBooking: payment=%s finalized, bookings=%v confirmed=%v",
		req.PaymentID, result.BookingIDs, result.Confirmed)

	return &Response{
		Status:     StatusConfirmed,
		PaymentID:  req.PaymentID,
		BookingIDs: result.BookingIDs,
		Confirmed:  result.Confirmed,
	}, nil
}
