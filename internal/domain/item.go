package domain

// BookableItem нормализованная позиция каталога провайдера расписаний
// Идентификаторы провайдера непрозрачны (могут быть числами или строками),
// поэтому храним их строками
type BookableItem struct {
	ID              string
	Name            string
	Description     string
	Price           string // десятичная строка, валюта задается конфигурацией
	DurationMinutes *int
	CategoryID      string
	CategoryName    string
	ImageURL        *string
	Status          ItemStatus
	Kind            ItemKind
	Location        *Location

	// Raw исходная запись провайдера, сохраняется для диагностики
	Raw map[string]interface{}
}

// IsOnline возвращает true, если позиция доступна для бронирования
func (i *BookableItem) IsOnline() bool {
	return i.Status == StatusOnline
}

// Location адрес или данные онлайн-встречи
type Location struct {
	Address    string
	City       string
	MeetingURL string
}

// Performer исполнитель (unit провайдера), может быть привязан к подмножеству услуг
type Performer struct {
	ID         string
	Name       string
	Email      string
	Phone      string
	ServiceIDs []string

	Raw map[string]interface{}
}

// CanPerform возвращает true, если исполнитель может выполнять услугу
// Пустой список услуг трактуется как "все услуги"
func (p *Performer) CanPerform(serviceID string) bool {
	if len(p.ServiceIDs) == 0 {
		return true
	}
	for _, id := range p.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}
