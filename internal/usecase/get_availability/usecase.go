package get_availability

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-ScheduleGateway/internal/domain"
	"github.com/m04kA/SMC-ScheduleGateway/internal/service/catalog"
	"github.com/m04kA/SMC-ScheduleGateway/pkg/types"
)

// UseCase сценарий разрешения доступности позиций каталога
//
// Доступность разрешается цепочкой стратегий: сбой или пустой ответ
// промежуточной стратегии переводит на следующую, и только отказ последней
// считается отказом сценария. Форма ответа не зависит от сработавшей стратегии
type UseCase struct {
	catalog          CatalogService
	client           SchedulingClient
	defaultRangeDays int
	log              Logger
}

// New создает новый сценарий разрешения доступности
func New(catalogService CatalogService, client SchedulingClient, defaultRangeDays int, log Logger) *UseCase {
	if defaultRangeDays <= 0 {
		defaultRangeDays = domain.DefaultAvailabilityRangeDays
	}
	return &UseCase{
		catalog:          catalogService,
		client:           client,
		defaultRangeDays: defaultRangeDays,
		log:              log,
	}
}

// Handle выполняет разрешение доступности по позиции или категории
func (uc *UseCase) Handle(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных (до любых внешних вызовов)
	if err := uc.validate(req); err != nil {
		return nil, err
	}

	// 2. Разрешение по категории — объединение по всем её позициям
	if req.CategoryID != "" {
		return uc.handleCategory(ctx, req)
	}

	// 3. Разрешение по одной позиции
	item, err := uc.catalog.GetItem(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, catalog.ErrItemNotFound) {
			return nil, fmt.Errorf("%w: id=%s", ErrItemNotFound, req.ItemID)
		}
		return nil, fmt.Errorf("%w: catalog lookup: %v", ErrInternal, err)
	}

	kind := uc.effectiveKind(item, req.KindHint)
	windows, resolvedBy, err := uc.resolveItem(ctx, item, kind, req)
	if err != nil {
		return nil, err
	}

	built, total := buildWindows(windows)
	return &Response{
		ItemID:     item.ID,
		Kind:       string(kind),
		ResolvedBy: resolvedBy,
		DateFrom:   req.DateFrom,
		DateTo:     req.DateTo,
		Windows:    built,
		TotalSlots: total,
	}, nil
}

// handleCategory объединяет доступность всех позиций категории
//
// Отказ разрешения отдельной позиции не валит весь запрос; отказ всех
// позиций — валит
func (uc *UseCase) handleCategory(ctx context.Context, req *Request) (*Response, error) {
	members, err := uc.catalog.ListByCategory(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, catalog.ErrCategoryNotFound) {
			return nil, fmt.Errorf("%w: id=%s", ErrCategoryNotFound, req.CategoryID)
		}
		return nil, fmt.Errorf("%w: catalog lookup: %v", ErrInternal, err)
	}

	union := make(map[string][]types.TimeString)
	resolved := 0
	for _, item := range members {
		kind := uc.effectiveKind(item, req.KindHint)
		windows, _, err := uc.resolveItem(ctx, item, kind, req)
		if err != nil {
			uc.log.Warn("get_availability: category=%s item=%s resolution failed, skipping: %v",
				req.CategoryID, item.ID, err)
			continue
		}
		resolved++
		for date, times := range windows {
			union[date] = append(union[date], times...)
		}
	}

	if resolved == 0 {
		return nil, fmt.Errorf("%w: category=%s: no item resolved", ErrAvailabilityUnavailable, req.CategoryID)
	}

	built, total := buildWindows(union)
	return &Response{
		CategoryID: req.CategoryID,
		ResolvedBy: "union",
		DateFrom:   req.DateFrom,
		DateTo:     req.DateTo,
		Windows:    built,
		TotalSlots: total,
	}, nil
}

// resolveItem прогоняет позицию через цепочку стратегий её типа
//
// На следующую стратегию переводит как ошибка, так и пустой ответ без
// единой даты: запасной источник может знать окна, которых нет в основном.
// Пустой ответ последней стратегии валиден — в диапазоне нет свободных окон
func (uc *UseCase) resolveItem(ctx context.Context, item *domain.BookableItem, kind domain.ItemKind, req *Request) (map[string][]types.TimeString, string, error) {
	chain := uc.strategyChain(kind)

	var lastErr error
	for i, s := range chain {
		last := i == len(chain)-1

		windows, err := s.run(ctx, item, req)
		if err != nil {
			lastErr = err
			if !last {
				uc.log.Warn("get_availability: item=%s strategy %s failed, trying next: %v", item.ID, s.name, err)
			}
			continue
		}

		if len(windows) == 0 && !last {
			uc.log.Info("get_availability: item=%s strategy %s yielded no dates, trying next", item.ID, s.name)
			continue
		}

		if i > 0 {
			uc.log.Info("get_availability: item=%s resolved by fallback strategy %s", item.ID, s.name)
		}
		return windows, s.name, nil
	}

	// Сюда приводит только ошибка последней стратегии
	uc.log.Error("get_availability: item=%s all strategies failed: %v", item.ID, lastErr)
	return nil, "", fmt.Errorf("%w: item=%s: %v", ErrAvailabilityUnavailable, item.ID, lastErr)
}

// effectiveKind возвращает тип позиции с учетом переопределения из запроса
func (uc *UseCase) effectiveKind(item *domain.BookableItem, hint string) domain.ItemKind {
	if hint != "" {
		return domain.ItemKind(hint)
	}
	return item.Kind
}

// buildWindows превращает карту дата -> времена в отсортированные окна
// и суммарное количество слотов. Времена дедуплицируются;
// нулезаполненный формат HH:MM сортируется строково
func buildWindows(byDate map[string][]types.TimeString) ([]Window, int) {
	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	windows := make([]Window, 0, len(dates))
	total := 0
	for _, date := range dates {
		seen := make(map[types.TimeString]struct{}, len(byDate[date]))
		day := domain.AvailabilityWindow{Date: date}
		for _, t := range byDate[date] {
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			day.Times = append(day.Times, t)
		}
		sort.Slice(day.Times, func(i, j int) bool { return day.Times[i].IsBefore(day.Times[j]) })

		times := make([]string, 0, day.SlotCount())
		for _, t := range day.Times {
			times = append(times, t.String())
		}
		total += day.SlotCount()
		windows = append(windows, Window{Date: day.Date, Times: times, Count: day.SlotCount()})
	}
	return windows, total
}
