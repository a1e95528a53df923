package item

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/IdleRealms_Go/internal/domain"
)

// cachedItem wraps an item with the schema version it was cached under
type cachedItem struct {
	Version  string
	Item     *domain.Item
	CachedAt time.Time
}

// itemCache is a size-bounded, expiring cache of catalog items by id
type itemCache struct {
	lru *expirable.LRU[int, *cachedItem]
}

func newItemCache(size int, ttl time.Duration) *itemCache {
	return &itemCache{
		lru: expirable.NewLRU[int, *cachedItem](size, nil, ttl),
	}
}

// Get returns a copy so callers cannot mutate the cached item
func (c *itemCache) Get(id int) (*domain.Item, bool) {
	entry, ok := c.lru.Get(id)
	if !ok {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(id)
		return nil, false
	}
	it := *entry.Item
	return &it, true
}

func (c *itemCache) Set(item *domain.Item) {
	it := *item
	c.lru.Add(item.ID, &cachedItem{Version: CacheSchemaVersion, Item: &it, CachedAt: time.Now()})
}

func (c *itemCache) Len() int {
	return c.lru.Len()
}

func (c *itemCache) Purge() {
	c.lru.Purge()
}
