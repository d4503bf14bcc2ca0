package rates

import (
	"context"
	"sync"
	"time"
)

type cacheEntry struct {
	value  float64
	expiry time.Time
}

// Cache memoizes rate lookups with a TTL. The clock is injected so expiry is
// testable; there is no package-level state.
type Cache struct {
	src Source
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]cacheEntry
}

func NewCache(src Source, ttl time.Duration, now func() time.Time) *Cache {
	return &Cache{
		src:     src,
		ttl:     ttl,
		now:     now,
		entries: make(map[string]cacheEntry),
	}
}

func (c *Cache) Rate(ctx context.Context, code string) (float64, error) {
	c.mu.Lock()
	entry, ok := c.entries[code]
	c.mu.Unlock()
	if ok && c.now().Before(entry.expiry) {
		return entry.value, nil
	}

	value, err := c.src.Rate(ctx, code)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	c.entries[code] = cacheEntry{value: value, expiry: c.now().Add(c.ttl)}
	c.mu.Unlock()
	return value, nil
}
