package health

import (
	"net/http"

	"github.com/m04kA/SMC-ScheduleGateway/internal/api/handlers"
)

// Stores интерфейс для снятия показателей хранилищ в памяти
type Stores interface {
	PendingCount() int
	ProcessedCount() int
}

// Response модель ответа проверки здоровья
type Response struct {
	Status            string `json:"status"`
	PendingBookings   int    `json:"pendingBookings"`
	ProcessedPayments int    `json:"processedPayments"`
}

type Handler struct {
	stores Stores
}

func NewHandler(stores Stores) *Handler {
	return &Handler{stores: stores}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Response{
		Status:            "ok",
		PendingBookings:   h.stores.PendingCount(),
		ProcessedPayments: h.stores.ProcessedCount(),
	})
}
