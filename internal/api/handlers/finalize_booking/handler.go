package finalize_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleGateway/internal/api/handlers"
	finalizeBooking "github.com/m04kA/SMC-ScheduleGateway/internal/usecase/finalize_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "не указан идентификатор платежа"
	msgPaymentNotFound    = "платеж не найден"
	msgPaymentNotPaid     = "платеж не оплачен"
	msgNoPendingBooking   = "для платежа нет отложенного бронирования"
	msgReservationFailed  = "платеж оплачен, но бронирование не прошло"
)

type Handler struct {
	useCase FinalizeBookingUseCase
	logger  Logger
}

func NewHandler(useCase FinalizeBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/finalize
// Клиентский путь финализации: витрина опрашивает его после возврата
// покупателя со страницы оплаты, не дожидаясь вебхука
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req finalizeBooking.Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/finalize - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, finalizeBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/finalize - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, finalizeBooking.ErrPaymentNotFound):
			h.logger.Warn("POST /bookings/finalize - Payment not found: payment_id=%s", req.PaymentID)
			handlers.RespondNotFound(w, msgPaymentNotFound)

		case errors.Is(err, finalizeBooking.ErrPaymentNotPaid):
			h.logger.Info("POST /bookings/finalize - Payment not paid: payment_id=%s", req.PaymentID)
			handlers.RespondError(w, http.StatusConflict, msgPaymentNotPaid)

		case errors.Is(err, finalizeBooking.ErrNoPendingBooking):
			h.logger.Warn("POST /bookings/finalize - No pending booking: payment_id=%s", req.PaymentID)
			handlers.RespondNotFound(w, msgNoPendingBooking)

		case errors.Is(err, finalizeBooking.ErrReservationFailed):
			h.logger.Error("POST /bookings/finalize - Reservation failed: payment_id=%s, error=%v",
				req.PaymentID, err)
			handlers.RespondBadGateway(w, msgReservationFailed)

		default:
			h.logger.Error("POST /bookings/finalize - Failed: payment_id=%s, error=%v", req.PaymentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/finalize - Finalized: payment_id=%s, status=%s", req.PaymentID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
