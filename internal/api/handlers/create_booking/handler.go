package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleGateway/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-ScheduleGateway/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные бронирования"
	msgItemNotFound       = "позиция каталога не найдена"
	msgItemNotBookable    = "позиция недоступна для бронирования"
	msgPaymentCreation    = "не удалось создать платежную сессию"
	msgReservationFailed  = "не удалось провести бронирование у провайдера"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: item_id=%s, error=%v", req.ItemID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrItemNotFound):
			h.logger.Warn("POST /bookings - Item not found: item_id=%s", req.ItemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, createBooking.ErrItemNotBookable):
			h.logger.Warn("POST /bookings - Item not bookable: item_id=%s", req.ItemID)
			handlers.RespondError(w, http.StatusConflict, msgItemNotBookable)

		case errors.Is(err, createBooking.ErrPaymentCreation):
			h.logger.Error("POST /bookings - Payment creation failed: item_id=%s, error=%v", req.ItemID, err)
			handlers.RespondBadGateway(w, msgPaymentCreation)

		case errors.Is(err, createBooking.ErrReservationFailed):
			h.logger.Error("POST /bookings - Reservation failed: item_id=%s, error=%v", req.ItemID, err)
			handlers.RespondBadGateway(w, msgReservationFailed)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: item_id=%s, error=%v", req.ItemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	if result.PaymentRequired {
		h.logger.Info("POST /bookings - Pending booking created: payment_id=%s, item_id=%s",
			result.PaymentID, req.ItemID)
		handlers.RespondJSON(w, http.StatusAccepted, response)
		return
	}

	h.logger.Info("POST /bookings - Booking created: item_id=%s, booking_ids=%v", req.ItemID, result.BookingIDs)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
