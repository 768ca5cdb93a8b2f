package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-ScheduleGateway/internal/domain"
	"github.com/m04kA/SMC-ScheduleGateway/internal/integrations/simplybook"
)

// Service кэширующий сервис каталога провайдера расписаний
//
// Каталог запрашивается у провайдера при промахе кэша или принудительном
// обновлении; записи неизменяемы после выдачи. Кэш живет в памяти процесса
// и защищен мьютексом: конкурентные обращения при истекшем TTL дают один
// запрос к провайдеру
type Service struct {
	client SchedulingClient
	ttl    time.Duration
	log    Logger

	mu         sync.Mutex
	items      []*domain.BookableItem
	performers []*domain.Performer
	fetchedAt  time.Time
	now        func() time.Time
}

// NewService создает новый сервис каталога
func NewService(client SchedulingClient, ttl time.Duration, log Logger) *Service {
	return &Service{
		client: client,
		ttl:    ttl,
		log:    log,
		now:    time.Now,
	}
}

// ListItems возвращает нормализованный каталог
// forceRefresh принудительно обновляет кэш независимо от TTL
func (s *Service) ListItems(ctx context.Context, forceRefresh bool) ([]*domain.BookableItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureFreshLocked(ctx, forceRefresh); err != nil {
		return nil, err
	}
	return s.items, nil
}

// GetItem возвращает позицию каталога по идентификатору
func (s *Service) GetItem(ctx context.Context, itemID string) (*domain.BookableItem, error) {
	items, err := s.ListItems(ctx, false)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if item.ID == itemID {
			return item, nil
		}
	}
	return nil, ErrItemNotFound
}

// ListByCategory возвращает позиции каталога указанной категории
func (s *Service) ListByCategory(ctx context.Context, categoryID string) ([]*domain.BookableItem, error) {
	items, err := s.ListItems(ctx, false)
	if err != nil {
		return nil, err
	}

	var members []*domain.BookableItem
	for _, item := range items {
		if item.CategoryID == categoryID {
			members = append(members, item)
		}
	}
	if len(members) == 0 {
		return nil, ErrCategoryNotFound
	}
	return members, nil
}

// ListPerformers возвращает нормализованный список исполнителей
func (s *Service) ListPerformers(ctx context.Context) ([]*domain.Performer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureFreshLocked(ctx, false); err != nil {
		return nil, err
	}
	return s.performers, nil
}

// WorkCalendar возвращает рабочий календарь провайдера на месяц
// Не кэшируется: зависит от актуального состояния провайдера
func (s *Service) WorkCalendar(ctx context.Context, year, month int, performerID *string) (map[string]interface{}, error) {
	calendar, err := s.client.GetWorkCalendar(ctx, year, month, performerID)
	if err != nil {
		s.log.Error("catalog: work calendar fetch failed for %04d-%02d: %v", year, month, err)
		return nil, fmt.Errorf("%w: work calendar: %v", ErrInternal, err)
	}
	return calendar, nil
}

// ensureFreshLocked обновляет кэш при промахе или принудительном обновлении
// Вызывается под мьютексом
func (s *Service) ensureFreshLocked(ctx context.Context, force bool) error {
	if !force && s.items != nil && s.now().Sub(s.fetchedAt) < s.ttl {
		return nil
	}

	items, err := s.fetchItems(ctx)
	if err != nil {
		return err
	}

	s.items = items
	s.fetchedAt = s.now()

	// Исполнители обновляются вместе с каталогом; их отсутствие не фатально
	rawUnits, err := s.client.GetUnitList(ctx)
	if err != nil {
		s.log.Warn("catalog: unit list fetch failed, performers unavailable: %v", err)
		s.performers = nil
		return nil
	}

	performers := make([]*domain.Performer, 0)
	for _, rec := range simplybook.RecordList(rawUnits) {
		performers = append(performers, NormalizePerformer(rec))
	}
	s.performers = performers

	s.log.Info("catalog: refreshed %d items, %d performers", len(s.items), len(s.performers))
	return nil
}

// fetchItems запрашивает каталог у провайдера
// Основной источник — административный getEventList; при его недоступности
// используется публичный getServiceListPublic (меньше полей, но рабочий каталог)
func (s *Service) fetchItems(ctx context.Context) ([]*domain.BookableItem, error) {
	raw, err := s.client.GetEventList(ctx)
	sourceMethod := "getEventList"
	if err != nil {
		s.log.Warn("catalog: getEventList failed, falling back to public list: %v", err)

		raw, err = s.client.GetServiceListPublic(ctx)
		sourceMethod = "getServiceListPublic"
		if err != nil {
			s.log.Error("catalog: all catalog sources failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	}

	records := simplybook.RecordList(raw)
	items := make([]*domain.BookableItem, 0, len(records))
	for _, rec := range records {
		item := NormalizeItem(rec)
		if item.ID == "" {
			s.log.Warn("catalog: skipping %s record without id", sourceMethod)
			continue
		}
		items = append(items, item)
		s.log.Debug("catalog: item id=%s name=%q kind=%s (source=%s)",
			item.ID, item.Name, item.Kind, sourceMethod)
	}

	return items, nil
}
