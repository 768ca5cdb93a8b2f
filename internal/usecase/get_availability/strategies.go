package get_availability

import (
	"context"
	"encoding/json"

	"github.com/m04kA/SMC-ScheduleGateway/internal/domain"
	"github.com/m04kA/SMC-ScheduleGateway/internal/integrations/simplybook"
	"github.com/m04kA/SMC-ScheduleGateway/pkg/types"
)

// Имена стратегий разрешения доступности в порядке их определения
const (
	strategyMatrix = "matrix"
	strategyEvents = "events"
)

// strategy одна стратегия разрешения: отображение дата -> времена начала
// Пустой результат без ошибки переводит цепочку на следующую стратегию
type strategy func(ctx context.Context, item *domain.BookableItem, req *Request) (map[string][]types.TimeString, error)

// strategyChain возвращает упорядоченную цепочку стратегий для типа позиции
//
// Услуги с подбором времени разрешаются матрицей стартовых времен, события
// с фиксированным расписанием — списком событий; второй элемент цепочки
// служит запасным источником при отказе первого
func (uc *UseCase) strategyChain(kind domain.ItemKind) []namedStrategy {
	matrix := namedStrategy{name: strategyMatrix, run: uc.resolveByMatrix}
	events := namedStrategy{name: strategyEvents, run: uc.resolveByEvents}

	if kind == domain.KindEvent {
		return []namedStrategy{events, matrix}
	}
	return []namedStrategy{matrix, events}
}

type namedStrategy struct {
	name string
	run  strategy
}

// resolveByMatrix разрешает доступность через матрицу стартовых времен
func (uc *UseCase) resolveByMatrix(ctx context.Context, item *domain.BookableItem, req *Request) (map[string][]types.TimeString, error) {
	matrix, err := uc.client.GetStartTimeMatrix(ctx, req.DateFrom, req.DateTo, item.ID, req.PerformerID, req.PartySize)
	if err != nil {
		return nil, err
	}

	windows := make(map[string][]types.TimeString)
	for date, rawTimes := range matrix {
		times := extractTimes(rawTimes)
		if len(times) > 0 {
			windows[date] = times
		}
	}
	return windows, nil
}

// resolveByEvents разрешает доступность через список событий за период
func (uc *UseCase) resolveByEvents(ctx context.Context, item *domain.BookableItem, req *Request) (map[string][]types.TimeString, error) {
	records, err := uc.client.GetEventListPublic(ctx, &req.DateFrom, &req.DateTo)
	if err != nil {
		return nil, err
	}

	windows := make(map[string][]types.TimeString)
	for _, rec := range records {
		if !eventMatchesItem(rec, item.ID) {
			continue
		}
		if req.PerformerID != nil && *req.PerformerID != "" {
			if unit := simplybook.AsString(rec["unit_id"]); unit != "" && unit != *req.PerformerID {
				continue
			}
		}

		date, timeOfDay, ok := eventOccurrence(rec)
		if !ok {
			// Запись без распознаваемого времени начала пропускается
			continue
		}
		if date < req.DateFrom || date > req.DateTo {
			continue
		}

		ts, err := types.NewTimeStringFromString(timeOfDay)
		if err != nil {
			continue
		}
		windows[date] = append(windows[date], ts)
	}
	return windows, nil
}

// eventMatchesItem проверяет принадлежность записи события позиции каталога
// Разные процедуры провайдера называют идентификатор по-разному
func eventMatchesItem(rec map[string]interface{}, itemID string) bool {
	for _, key := range []string{"event_id", "service_id", "id"} {
		if id := simplybook.AsString(rec[key]); id != "" {
			return id == itemID
		}
	}
	return false
}

// eventOccurrence извлекает дату и время начала из записи события
//
// Провайдер присылает либо раздельные поля даты и времени, либо один
// комбинированный штамп "YYYY-MM-DD HH:MM:SS"
func eventOccurrence(rec map[string]interface{}) (date, timeOfDay string, ok bool) {
	date = simplybook.AsString(rec["date"])
	if date == "" {
		date = simplybook.AsString(rec["start_date"])
	}
	if date != "" {
		for _, key := range []string{"time", "start_time", "time_from", "from"} {
			if t := simplybook.AsString(rec[key]); t != "" {
				return date, t, true
			}
		}
	}

	for _, key := range []string{"start_date_time", "start_datetime", "start", "datetime"} {
		if stamp := simplybook.AsString(rec[key]); stamp != "" {
			d, t, err := domain.SplitDatetime(stamp)
			if err != nil {
				continue
			}
			return d, t, true
		}
	}

	return "", "", false
}

// extractTimes извлекает времена начала из значения матрицы для одной даты
//
// Встречаются три формы: массив строк, массив объектов с полем времени
// и объект с вложенным массивом times. Нераспознанные элементы пропускаются
func extractTimes(raw json.RawMessage) []types.TimeString {
	var asArray []interface{}
	if err := json.Unmarshal(raw, &asArray); err == nil {
		return timesFromList(asArray)
	}

	var asObject map[string]interface{}
	if err := json.Unmarshal(raw, &asObject); err == nil {
		if nested, ok := asObject["times"].([]interface{}); ok {
			return timesFromList(nested)
		}
		if nested, ok := asObject["slots"].([]interface{}); ok {
			return timesFromList(nested)
		}
	}

	return nil
}

func timesFromList(list []interface{}) []types.TimeString {
	times := make([]types.TimeString, 0, len(list))
	for _, v := range list {
		var candidate string
		switch elem := v.(type) {
		case string:
			candidate = elem
		case map[string]interface{}:
			for _, key := range []string{"time", "start_time", "time_from", "from", "hour"} {
				if t := simplybook.AsString(elem[key]); t != "" {
					candidate = t
					break
				}
			}
		}
		if candidate == "" {
			continue
		}
		if ts, err := types.NewTimeStringFromString(candidate); err == nil {
			times = append(times, ts)
		}
	}
	return times
}
