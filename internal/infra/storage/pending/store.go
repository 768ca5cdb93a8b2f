package pending

import (
	"sync"

	"github.com/m04kA/SMC-ScheduleGateway/internal/domain"
)

// Store хранилище отложенных бронирований, ожидающих оплаты
// Ключ — идентификатор платежа внешнего провайдера.
//
// Хранит данные только в памяти процесса: при перезапуске отложенные
// бронирования теряются — осознанное ограничение текущей архитектуры,
// а не дефект
type Store struct {
	mu    sync.Mutex
	items map[string]*domain.PendingBooking
}

// NewStore создает новое хранилище отложенных бронирований
func NewStore() *Store {
	return &Store{
		items: make(map[string]*domain.PendingBooking),
	}
}

// Put регистрирует отложенное бронирование по идентификатору платежа
func (s *Store) Put(paymentID string, booking *domain.PendingBooking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[paymentID]; ok {
		return ErrAlreadyExists
	}

	s.items[paymentID] = booking
	return nil
}

// Get возвращает отложенное бронирование по идентификатору платежа
func (s *Store) Get(paymentID string) (*domain.PendingBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.items[paymentID]
	if !ok {
		return nil, ErrNotFound
	}
	return booking, nil
}

// Delete удаляет отложенное бронирование
// Удаление отсутствующей записи не является ошибкой
func (s *Store) Delete(paymentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, paymentID)
}

// Len возвращает количество отложенных бронирований
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
