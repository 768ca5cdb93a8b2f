package payment_webhook

import (
	"errors"
	"net/http"

	finalizeBooking "github.com/m04kA/SMC-ScheduleGateway/internal/usecase/finalize_booking"
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

// Handle POST /api/v1/webhooks/payment
//
// Платежный провайдер передает только идентификатор платежа формой
// (поле id); статус перезапрашивается внутри use case. Понятые, но не
// требующие действий уведомления (не оплачен, уже обработан, неизвестный
// платеж) подтверждаются кодом 200, чтобы провайдер не повторял доставку.
// Сбой бронирования отвечает 500: повторная доставка — наш механизм
// восстановления
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST /webhooks/payment - Failed to parse form: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	paymentID := r.FormValue("id")
	if paymentID == "" {
		h.logger.Warn("POST /webhooks/payment - Missing payment id")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	_, err := h.useCase.Execute(r.Context(), &finalizeBooking.Request{PaymentID: paymentID})
	if err != nil {
		switch {
		case errors.Is(err, finalizeBooking.ErrPaymentNotPaid),
			errors.Is(err, finalizeBooking.ErrPaymentNotFound),
			errors.Is(err, finalizeBooking.ErrNoPendingBooking):
			h.logger.Info("POST /webhooks/payment - Acknowledged without action: payment_id=%s, reason=%v",
				paymentID, err)
			w.WriteHeader(http.StatusOK)

		default:
			h.logger.Error("POST /webhooks/payment - Failed, provider will retry: payment_id=%s, error=%v",
				paymentID, err)
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.logger.Info("POST /webhooks/payment - Processed: payment_id=%s", paymentID)
	w.WriteHeader(http.StatusOK)
}
