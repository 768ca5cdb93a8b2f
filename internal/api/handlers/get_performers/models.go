package get_performers

import "github.com/m04kA/SMC-ScheduleGateway/internal/domain"

// PerformerResponse HTTP модель исполнителя
type PerformerResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	ServiceIDs []string `json:"serviceIds,omitempty"`
}

// ListResponse HTTP модель списка исполнителей
// Calendar заполняется только при запросе рабочего календаря
type ListResponse struct {
	Performers []PerformerResponse    `json:"performers"`
	Calendar   map[string]interface{} `json:"calendar,omitempty"`
}

// FromDomainPerformers конвертирует доменных исполнителей в HTTP модель
func FromDomainPerformers(performers []*domain.Performer) []PerformerResponse {
	resp := make([]PerformerResponse, 0, len(performers))
	for _, p := range performers {
		resp = append(resp, PerformerResponse{
			ID:         p.ID,
			Name:       p.Name,
			Email:      p.Email,
			Phone:      p.Phone,
			ServiceIDs: p.ServiceIDs,
		})
	}
	return resp
}
