package catalog

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/m04kA/SMC-ScheduleGateway/internal/domain"
	"github.com/m04kA/SMC-ScheduleGateway/internal/integrations/simplybook"
)

// Списки ключей-кандидатов для извлечения полей.
// Имена полей различаются между конфигурациями и версиями провайдера,
// поэтому каждое поле извлекается по приоритетному списку: первый
// непустой кандидат побеждает
var (
	idKeys          = []string{"id", "event_id", "service_id"}
	nameKeys        = []string{"name", "title", "event_name", "caption"}
	descriptionKeys = []string{"description", "description_text", "info"}
	priceKeys       = []string{"price", "event_price", "cost", "amount"}
	durationKeys    = []string{"duration", "duration_minutes", "length"}
	categoryIDKeys  = []string{"category_id", "event_category_id", "category"}
	categoryNameKey = []string{"category_name", "category_title"}
	imageKeys       = []string{"picture", "picture_path", "image", "image_url"}
	addressKeys     = []string{"address", "location", "address1"}
	cityKeys        = []string{"city"}
	meetingURLKeys  = []string{"meeting_url", "join_url", "video_url"}

	// Явные признаки событийного типа
	eventFlagKeys = []string{"is_event", "is_class", "fixed_time"}

	// Поля с фиксированными датами проведения: их наличие указывает на событие
	occurrenceKeys = []string{"dates", "event_dates", "occurrences", "start_date_time"}
)

// NormalizeItem приводит сырую запись провайдера к канонической позиции каталога
func NormalizeItem(raw map[string]interface{}) *domain.BookableItem {
	item := &domain.BookableItem{
		ID:           pickString(raw, idKeys...),
		Name:         pickString(raw, nameKeys...),
		Description:  pickString(raw, descriptionKeys...),
		Price:        pickString(raw, priceKeys...),
		CategoryID:   pickString(raw, categoryIDKeys...),
		CategoryName: pickString(raw, categoryNameKey...),
		Status:       normalizeStatus(raw),
		Raw:          raw,
	}

	if duration, ok := pickInt(raw, durationKeys...); ok {
		item.DurationMinutes = &duration
	}

	if image := pickString(raw, imageKeys...); image != "" {
		item.ImageURL = &image
	}

	if loc := normalizeLocation(raw); loc != nil {
		item.Location = loc
	}

	item.Kind = inferKind(raw, item.Name, item.Description)

	return item
}

// NormalizePerformer приводит сырую запись исполнителя к канонической форме
func NormalizePerformer(raw map[string]interface{}) *domain.Performer {
	return &domain.Performer{
		ID:         pickString(raw, idKeys...),
		Name:       pickString(raw, nameKeys...),
		Email:      pickString(raw, "email"),
		Phone:      pickString(raw, "phone", "phone_number"),
		ServiceIDs: pickStringList(raw, "service_ids", "services", "unit_map", "event_map"),
		Raw:        raw,
	}
}

// inferKind определяет тип позиции каталога
// Порядок: явный признак -> ключевые слова в названии/описании ->
// поля с фиксированными датами -> services по умолчанию.
// Результат — эвристика, зависящая от конфигурации тенанта; он
// возвращается клиенту и может быть переопределен в запросе доступности
func inferKind(raw map[string]interface{}, name, description string) domain.ItemKind {
	for _, key := range eventFlagKeys {
		if v, ok := raw[key]; ok {
			if simplybook.AsBool(v) {
				return domain.KindEvent
			}
			return domain.KindService
		}
	}

	// Сравнение по целым словам: "class" в "Classic haircut" не признак события
	words := strings.FieldsFunc(strings.ToLower(name+" "+description), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, word := range words {
		for _, keyword := range domain.EventKeywords {
			if word == keyword {
				return domain.KindEvent
			}
		}
	}

	for _, key := range occurrenceKeys {
		if v, ok := raw[key]; ok && v != nil {
			return domain.KindEvent
		}
	}

	return domain.KindService
}

// normalizeStatus извлекает статус позиции
// Отсутствие признака трактуется как online
func normalizeStatus(raw map[string]interface{}) domain.ItemStatus {
	for _, key := range []string{"is_active", "is_visible", "is_public"} {
		if v, ok := raw[key]; ok {
			if simplybook.AsBool(v) {
				return domain.StatusOnline
			}
			return domain.StatusOffline
		}
	}

	if status := pickString(raw, "status"); status != "" {
		if status == "offline" || status == "hidden" || status == "disabled" {
			return domain.StatusOffline
		}
	}

	return domain.StatusOnline
}

// normalizeLocation собирает адрес или данные онлайн-встречи
func normalizeLocation(raw map[string]interface{}) *domain.Location {
	loc := &domain.Location{
		Address:    pickString(raw, addressKeys...),
		City:       pickString(raw, cityKeys...),
		MeetingURL: pickString(raw, meetingURLKeys...),
	}
	if loc.Address == "" && loc.City == "" && loc.MeetingURL == "" {
		return nil
	}
	return loc
}

// pickString возвращает первое непустое строковое значение по списку ключей
func pickString(raw map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		if s := simplybook.AsString(v); s != "" {
			return s
		}
	}
	return ""
}

// pickInt возвращает первое числовое значение по списку ключей
// Строковые числа ("60") также принимаются
func pickInt(raw map[string]interface{}, keys ...string) (int, bool) {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		switch val := v.(type) {
		case float64:
			return int(val), true
		case string:
			if n, err := strconv.Atoi(val); err == nil {
				return n, true
			}
		}
	}
	return 0, false
}

// pickStringList возвращает первый непустой список строковых значений
// Принимает как массивы, так и объекты вида id -> данные
func pickStringList(raw map[string]interface{}, keys ...string) []string {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		switch val := v.(type) {
		case []interface{}:
			ids := make([]string, 0, len(val))
			for _, item := range val {
				if id := simplybook.AsString(item); id != "" {
					ids = append(ids, id)
				}
			}
			if len(ids) > 0 {
				return ids
			}
		case map[string]interface{}:
			ids := make([]string, 0, len(val))
			for id := range val {
				ids = append(ids, id)
			}
			if len(ids) > 0 {
				return ids
			}
		}
	}
	return nil
}
