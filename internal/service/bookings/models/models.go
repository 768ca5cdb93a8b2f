package models

import "github.com/m04kA/SMC-ScheduleGateway/internal/domain"

// ReserveRequest запрос на создание бронирования у провайдера
type ReserveRequest struct {
	ServiceID        string
	PerformerID      *string // nil — исполнитель подбирается автоматически
	Datetime         string  // "YYYY-MM-DDTHH:MM[:SS]" или с пробелом-разделителем
	Client           domain.ClientData
	AdditionalFields map[string]string
	Count            int
}
