package get_services

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleGateway/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleGateway/internal/service/catalog"
)

const (
	msgItemNotFound       = "позиция каталога не найдена"
	msgCategoryNotFound   = "категория не найдена"
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

// HandleList GET /api/v1/services
// Query: refresh=true — принудительное обновление кэша,
// categoryId — фильтр по категории
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	forceRefresh := r.URL.Query().Get("refresh") == "true"
	categoryID := r.URL.Query().Get("categoryId")

	var err error
	if categoryID != "" {
		members, cerr := h.catalog.ListByCategory(r.Context(), categoryID)
		err = cerr
		if err == nil {
			h.logger.Info("GET /services - %d items in category=%s", len(members), categoryID)
			handlers.RespondJSON(w, http.StatusOK, FromDomainItems(members))
			return
		}
	} else {
		items, lerr := h.catalog.ListItems(r.Context(), forceRefresh)
		err = lerr
		if err == nil {
			h.logger.Info("GET /services - %d items (refresh=%v)", len(items), forceRefresh)
			handlers.RespondJSON(w, http.StatusOK, FromDomainItems(items))
			return
		}
	}

	switch {
	case errors.Is(err, catalog.ErrCategoryNotFound):
		h.logger.Warn("GET /services - Category not found: category_id=%s", categoryID)
		handlers.RespondNotFound(w, msgCategoryNotFound)
	case errors.Is(err, catalog.ErrUnavailable):
		h.logger.Error("GET /services - Catalog unavailable: %v", err)
		handlers.RespondBadGateway(w, msgCatalogUnavailable)
	default:
		h.logger.Error("GET /services - Failed to list items: %v", err)
		handlers.RespondInternalError(w)
	}
}

// HandleGet GET /api/v1/services/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["id"]

	item, err := h.catalog.GetItem(r.Context(), itemID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrItemNotFound):
			h.logger.Warn("GET /services/{id} - Item not found: item_id=%s", itemID)
			handlers.RespondNotFound(w, msgItemNotFound)
		case errors.Is(err, catalog.ErrUnavailable):
			h.logger.Error("GET /services/{id} - Catalog unavailable: %v", err)
			handlers.RespondBadGateway(w, msgCatalogUnavailable)
		default:
			h.logger.Error("GET /services/{id} - Failed to get item: item_id=%s, error=%v", itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainItem(item))
}
