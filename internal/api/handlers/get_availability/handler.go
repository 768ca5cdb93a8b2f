package get_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleGateway/internal/api/handlers"
	getAvailability "github.com/m04kA/SMC-ScheduleGateway/internal/usecase/get_availability"
)

const (
	msgInvalidRequest          = "некорректные параметры запроса доступности"
	msgInvalidDateRange        = "dateFrom не может быть позже dateTo"
	msgItemNotFound            = "позиция каталога не найдена"
	msgCategoryNotFound        = "категория не найдена"
	msgAvailabilityUnavailable = "доступность временно недоступна у провайдера"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query: itemId либо categoryId, dateFrom (обязательный), dateTo,
// performerId, partySize, kind
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := ToUseCaseRequest(r)

	result, err := h.useCase.Handle(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidDateRange):
			h.logger.Warn("GET /availability - Invalid date range: from=%s, to=%s", req.DateFrom, req.DateTo)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, getAvailability.ErrInvalidRequest):
			h.logger.Warn("GET /availability - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, getAvailability.ErrItemNotFound):
			h.logger.Warn("GET /availability - Item not found: item_id=%s", req.ItemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, getAvailability.ErrCategoryNotFound):
			h.logger.Warn("GET /availability - Category not found: category_id=%s", req.CategoryID)
			handlers.RespondNotFound(w, msgCategoryNotFound)

		case errors.Is(err, getAvailability.ErrAvailabilityUnavailable):
			h.logger.Error("GET /availability - All strategies failed: item_id=%s, category_id=%s, error=%v",
				req.ItemID, req.CategoryID, err)
			handlers.RespondBadGateway(w, msgAvailabilityUnavailable)

		default:
			h.logger.Error("GET /availability - Failed: item_id=%s, error=%v", req.ItemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Resolved item_id=%s category_id=%s strategy=%s windows=%d",
		req.ItemID, req.CategoryID, result.ResolvedBy, len(result.Windows))
	handlers.RespondJSON(w, http.StatusOK, result)
}
