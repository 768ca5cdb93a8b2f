package get_services

import "github.com/m04kA/SMC-ScheduleGateway/internal/domain"

// ItemResponse HTTP модель позиции каталога
type ItemResponse struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description,omitempty"`
	Price           string            `json:"price,omitempty"`
	DurationMinutes *int              `json:"durationMinutes,omitempty"`
	CategoryID      string            `json:"categoryId,omitempty"`
	CategoryName    string            `json:"categoryName,omitempty"`
	ImageURL        *string           `json:"imageUrl,omitempty"`
	Status          string            `json:"status"`
	Kind            string            `json:"kind"`
	Location        *LocationResponse `json:"location,omitempty"`
}

// LocationResponse HTTP модель адреса или онлайн-встречи
type LocationResponse struct {
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	MeetingURL string `json:"meetingUrl,omitempty"`
}

// ListResponse HTTP модель списка позиций
type ListResponse struct {
	Items []ItemResponse `json:"items"`
}

// FromDomainItem конвертирует доменную позицию в HTTP модель
func FromDomainItem(item *domain.BookableItem) ItemResponse {
	resp := ItemResponse{
		ID:              item.ID,
		Name:            item.Name,
		Description:     item.Description,
		Price:           item.Price,
		DurationMinutes: item.DurationMinutes,
		CategoryID:      item.CategoryID,
		CategoryName:    item.CategoryName,
		ImageURL:        item.ImageURL,
		Status:          string(item.Status),
		Kind:            string(item.Kind),
	}
	if item.Location != nil {
		resp.Location = &LocationResponse{
			Address:    item.Location.Address,
			City:       item.Location.City,
			MeetingURL: item.Location.MeetingURL,
		}
	}
	return resp
}

// FromDomainItems конвертирует список доменных позиций в HTTP модель
func FromDomainItems(items []*domain.BookableItem) *ListResponse {
	resp := &ListResponse{Items: make([]ItemResponse, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, FromDomainItem(item))
	}
	return resp
}
