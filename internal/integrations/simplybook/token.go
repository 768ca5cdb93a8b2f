package simplybook

import (
	"context"
	"sync"
	"time"
)

// tokenCache кэш короткоживущего токена провайдера
//
// Мьютекс удерживается на время запроса токена: два конкурентных запроса
// с истекшим токеном дают ровно один вызов логина к провайдеру.
// Неудачный запрос не кэшируется и повторяется при следующем обращении
type tokenCache struct {
	mu        sync.Mutex
	token     string
	fetchedAt time.Time
	ttl       time.Duration
	now       func() time.Time
	fetch     func(ctx context.Context) (string, error)
}

func newTokenCache(ttl time.Duration, fetch func(ctx context.Context) (string, error)) *tokenCache {
	return &tokenCache{
		ttl:   ttl,
		now:   time.Now,
		fetch: fetch,
	}
}

// Get возвращает закэшированный токен или запрашивает новый у провайдера
func (c *tokenCache) Get(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Sub(c.fetchedAt) < c.ttl {
		return c.token, nil
	}

	token, err := c.fetch(ctx)
	if err != nil {
		return "", err
	}

	c.token = token
	c.fetchedAt = c.now()
	return token, nil
}

// Invalidate сбрасывает закэшированный токен
func (c *tokenCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}
