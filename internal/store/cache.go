package store

import (
	"sync"
	"time"

	"github.com/solarchallenge/climate-explorer/internal/climate"
)

// Cache is a concurrency-safe holder for the built session dataset with a
// time-to-live. Loading and preprocessing the full dataset is the expensive
// step of the pipeline; queries read the cached copy until it expires or a
// refresh replaces it.
type Cache struct {
	mu sync.RWMutex

	dataset climate.Dataset
	setAt   time.Time

	ttl time.Duration // <= 0 means entries never expire
}

// New creates a Cache with the given time-to-live.
func New(ttl time.Duration) *Cache {
	return &Cache{ttl: ttl}
}

// Get returns the cached dataset. It reports false when nothing has been
// stored yet or the entry has outlived the TTL.
func (c *Cache) Get() (climate.Dataset, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.dataset == nil {
		return nil, false
	}
	if c.ttl > 0 && time.Since(c.setAt) > c.ttl {
		return nil, false
	}
	return c.dataset, true
}

// Set replaces the cached dataset and restarts the TTL clock.
func (c *Cache) Set(ds climate.Dataset) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.dataset = ds
	c.setAt = time.Now()
}
