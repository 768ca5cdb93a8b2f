package domain

// ItemKind тип позиции каталога, определяет стратегию получения доступности
type ItemKind string

const (
	// KindService услуга с гибкой длительностью, доступность через матрицу стартовых времен
	KindService ItemKind = "service"

	// KindEvent событие с фиксированными датами проведения, доступность через список событий
	KindEvent ItemKind = "event"
)

// ItemStatus статус позиции каталога
type ItemStatus string

const (
	StatusOnline  ItemStatus = "online"
	StatusOffline ItemStatus = "offline"
)

// Default configuration values
const (
	// DefaultAvailabilityRangeDays диапазон по умолчанию, когда dateTo не указан
	// Ограничивает время ответа провайдера на широких диапазонах
	DefaultAvailabilityRangeDays = 14

	// DefaultCatalogTTLMinutes время жизни кэша каталога
	DefaultCatalogTTLMinutes = 5

	// DefaultPartySize количество мест по умолчанию
	DefaultPartySize = 1
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// EventKeywords ключевые слова в названии/описании, указывающие на событийный тип позиции
// Используются нормализатором, когда провайдер не передает явный признак
var EventKeywords = []string{
	"event",
	"class",
	"workshop",
	"course",
	"seminar",
	"webinar",
	"group",
	"masterclass",
}
