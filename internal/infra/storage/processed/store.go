package processed

import (
	"sync"
	"time"
)

// Store множество идентификаторов платежей, уже превращенных в бронирования
// Защищает от повторного создания бронирования при повторной доставке
// вебхука или избыточном вызове финализации.
//
// Множество растет в течение жизни процесса без вытеснения — допустимо
// только потому, что процесс короткоживущий; долговременная реализация
// должна вынести его во внешнее хранилище с TTL
type Store struct {
	mu  sync.Mutex
	ids map[string]time.Time
}

// NewStore создает новое множество обработанных платежей
func NewStore() *Store {
	return &Store{
		ids: make(map[string]time.Time),
	}
}

// Mark помечает платеж как обработанный
func (s *Store) Mark(paymentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids[paymentID] = time.Now()
}

// Contains возвращает true, если платеж уже обработан
func (s *Store) Contains(paymentID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[paymentID]
	return ok
}

// Len возвращает количество обработанных платежей
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}
