package get_performers

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ScheduleGateway/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleGateway/internal/service/catalog"
)

const (
	msgInvalidCalendar    = "некорректный параметр calendar, ожидается YYYY-MM"
	msgCatalogUnavailable = "каталог провайдера временно недоступен"
)

type Handler struct {
	catalog CatalogService
	logger  Logger
}

func NewHandler(catalogService CatalogService, logger Logger) *Handler {
	return &Handler{
		catalog: catalogService,
		logger:  logger,
	}
}

// Handle GET /api/v1/performers
// Query: serviceId — только исполнители, выполняющие услугу,
// calendar=YYYY-MM — добавить рабочий календарь на месяц,
// performerId — календарь конкретного исполнителя
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	performers, err := h.catalog.ListPerformers(r.Context())
	if err != nil {
		if errors.Is(err, catalog.ErrUnavailable) {
			h.logger.Error("GET /performers - Catalog unavailable: %v", err)
			handlers.RespondBadGateway(w, msgCatalogUnavailable)
			return
		}
		h.logger.Error("GET /performers - Failed to list performers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	if serviceID := r.URL.Query().Get("serviceId"); serviceID != "" {
		filtered := performers[:0:0]
		for _, p := range performers {
			if p.CanPerform(serviceID) {
				filtered = append(filtered, p)
			}
		}
		performers = filtered
	}

	response := &ListResponse{Performers: FromDomainPerformers(performers)}

	if calendarParam := r.URL.Query().Get("calendar"); calendarParam != "" {
		month, err := time.Parse("2006-01", calendarParam)
		if err != nil {
			h.logger.Warn("GET /performers - Invalid calendar param: %q", calendarParam)
			handlers.RespondBadRequest(w, msgInvalidCalendar)
			return
		}

		var performerID *string
		if id := r.URL.Query().Get("performerId"); id != "" {
			performerID = &id
		}

		calendar, err := h.catalog.WorkCalendar(r.Context(), month.Year(), int(month.Month()), performerID)
		if err != nil {
			h.logger.Error("GET /performers - Failed to get work calendar %s: %v", calendarParam, err)
			handlers.RespondBadGateway(w, msgCatalogUnavailable)
			return
		}
		response.Calendar = calendar
	}

	h.logger.Info("GET /performers - %d performers", len(response.Performers))
	handlers.RespondJSON(w, http.StatusOK, response)
}
