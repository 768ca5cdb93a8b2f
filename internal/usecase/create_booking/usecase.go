package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleGateway/internal/domain"
	"github.com/m04kA/SMC-ScheduleGateway/internal/integrations/mollie"
	"github.com/m04kA/SMC-ScheduleGateway/internal/service/catalog"
	bookingmodels "github.com/m04kA/SMC-ScheduleGateway/internal/service/bookings/models"
)

// UseCase use case для создания бронирования
//
// Платная позиция не бронируется у провайдера расписаний сразу: запрос
// сохраняется как отложенный под идентификатором платежа, а бронирование
// проводится после подтвержденной оплаты (см. finalize_booking)
type UseCase struct {
	catalog      CatalogService
	payments     PaymentClient
	reservations ReservationService
	pending      PendingStore
	settings     PaymentSettings
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalogService CatalogService,
	payments PaymentClient,
	reservations ReservationService,
	pending PendingStore,
	settings PaymentSettings,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:      catalogService,
		payments:     payments,
		reservations: reservations,
		pending:      pending,
		settings:     settings,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: item=%s, datetime=%s, email=%s",
		req.ItemID, req.Datetime, req.Client.Email)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем позицию каталога
	item, err := uc.catalog.GetItem(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, catalog.ErrItemNotFound) {
			uc.logger.Warn("CreateBooking: item id=%s not found", req.ItemID)
			return nil, ErrItemNotFound
		}
		uc.logger.Error("CreateBooking: failed to get item id=%s: %v", req.ItemID, err)
		return nil, fmt.Errorf("%w: failed to get item: %v", ErrInternal, err)
	}

	// 3. Проверяем, что позиция доступна для бронирования
	if !item.IsOnline() {
		uc.logger.Warn("CreateBooking: item id=%s is offline", req.ItemID)
		return nil, ErrItemNotBookable
	}

	// 4. Определяем сумму к оплате
	amount := resolveAmount(req, item)
	if amount == "" {
		return uc.reserveImmediately(ctx, req)
	}

	// 5. Создаем платежную сессию
	payment, err := uc.payments.CreatePayment(ctx, &mollie.CreatePaymentRequest{
		Amount: mollie.Amount{
			Value:    amount,
			Currency: uc.settings.Currency,
		},
		Description: item.Name,
		RedirectURL: uc.settings.RedirectURL,
		WebhookURL:  uc.settings.WebhookURL,
		Metadata: map[string]string{
			"itemId":   req.ItemID,
			"datetime": req.Datetime,
			"email":    req.Client.Email,
		},
	})
	if err != nil {
		uc.logger.Error("CreateBooking: payment creation failed for item=%s: %v", req.ItemID, err)
		return nil, fmt.Errorf("%w: %v", ErrPaymentCreation, err)
	}

	// 6. Откладываем бронирование до оплаты
	if err := uc.pending.Put(payment.ID, uc.toPendingBooking(req)); err != nil {
		uc.logger.Error("CreateBooking: failed to register pending booking payment=%s: %v", payment.ID, err)
		return nil, fmt.Errorf("%w: failed to register pending booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: pending booking registered payment=%s item=%s amount=%s %s",
		payment.ID, req.ItemID, amount, uc.settings.Currency)

	return &Response{
		PaymentRequired: true,
		PaymentID:       payment.ID,
		CheckoutURL:     payment.CheckoutURL(),
	}, nil
}

// reserveImmediately проводит бесплатное бронирование без платежного шага
func (uc *UseCase) reserveImmediately(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: item=%s has no price, reserving immediately", req.ItemID)

	result, err := uc.reservations.Reserve(ctx, uc.toReserveRequest(req))
	if err != nil {
		uc.logger.Error("CreateBooking: immediate reservation failed for item=%s: %v", req.ItemID, err)
		return nil, fmt.Errorf("%w: %v", ErrReservationFailed, err)
	}

	uc.logger.Info("CreateBooking: reserved item=%s bookings=%v", req.ItemID, result.BookingIDs)
	return &Response{
		PaymentRequired: false,
		BookingIDs:      result.BookingIDs,
		Confirmed:       result.Confirmed,
	}, nil
}

func (uc *UseCase) toPendingBooking(req *Request) *domain.PendingBooking {
	return &domain.PendingBooking{
		ServiceID:   req.ItemID,
		PerformerID: req.PerformerID,
		Datetime:    req.Datetime,
		Client: domain.ClientData{
			Name:  req.Client.Name,
			Email: req.Client.Email,
			Phone: req.Client.Phone,
		},
		AdditionalFields: req.AdditionalFields,
		Count:            req.Count,
		CreatedAt:        uc.timeProvider.Now(),
	}
}

func (uc *UseCase) toReserveRequest(req *Request) *bookingmodels.ReserveRequest {
	return &bookingmodels.ReserveRequest{
		ServiceID:   req.ItemID,
		PerformerID: req.PerformerID,
		Datetime:    req.Datetime,
		Client: domain.ClientData{
			Name:  req.Client.Name,
			Email: req.Client.Email,
			Phone: req.Client.Phone,
		},
		AdditionalFields: req.AdditionalFields,
		Count:            req.Count,
	}
}
