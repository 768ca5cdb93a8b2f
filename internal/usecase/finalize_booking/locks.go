package finalize_booking

import "sync"

// keyedLocks набор мьютексов по ключу: конкурентные финализации одного
// платежа сериализуются, разных платежей — идут параллельно
//
// Мьютексы не освобождаются после использования; число различных платежей
// за время жизни процесса мало, и это упрощение безопасно
type keyedLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedLocks() *keyedLocks {
	return &keyedLocks{
		locks: make(map[string]*sync.Mutex),
	}
}

// Acquire блокирует мьютекс ключа и возвращает функцию освобождения
func (k *keyedLocks) Acquire(key string) func() {
	k.mu.Lock()
	lock, ok := k.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		k.locks[key] = lock
	}
	k.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
