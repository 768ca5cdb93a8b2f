package get_availability

// Request запрос на разрешение доступности
//
// Задается либо ItemID (доступность одной позиции), либо CategoryID
// (объединение доступности всех позиций категории)
type Request struct {
	ItemID      string
	CategoryID  string
	DateFrom    string // "YYYY-MM-DD", обязательное
	DateTo      string // "YYYY-MM-DD", по умолчанию DateFrom + окно из конфигурации
	PerformerID *string
	PartySize   int
	KindHint    string // "service" | "event" | "" — переопределение классификации
}

// Window окно доступности: дата, отсортированные времена начала и их количество
type Window struct {
	Date  string   `json:"date"`
	Times []string `json:"times"`
	Count int      `json:"count"`
}

// Response результат разрешения доступности
// TotalSlots — суммарное количество слотов по всем датам диапазона
type Response struct {
	ItemID     string   `json:"itemId,omitempty"`
	CategoryID string   `json:"categoryId,omitempty"`
	Kind       string   `json:"kind,omitempty"`
	ResolvedBy string   `json:"resolvedBy"`
	DateFrom   string   `json:"dateFrom"`
	DateTo     string   `json:"dateTo"`
	Windows    []Window `json:"windows"`
	TotalSlots int      `json:"totalSlots"`
}
