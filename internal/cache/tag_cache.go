// Package cache keeps remote API read responses until a mutation
// invalidates one of their tags. Entries have no TTL and no size bound.
package cache

import (
	"sync"

	"github.com/imrishuroy/go-ecom-admin/internal/metrics"
)

type entry struct {
	body []byte
	tags []string
}

// TagCache maps a read key to its response body and tags.
type TagCache struct {
	mu    sync.RWMutex
	store map[string]entry
	byTag map[string]map[string]struct{}
	epoch uint64
}

func NewTagCache() *TagCache {
	return &TagCache{
		store: make(map[string]entry),
		byTag: make(map[string]map[string]struct{}),
	}
}

// Get returns the cached body for key.
func (c *TagCache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.store[key]
	metrics.CacheLookup(ok)
	return e.body, ok
}

// Epoch identifies the invalidation state. Take it before a read starts
// and pass it to Set.
func (c *TagCache) Epoch() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.epoch
}

// Set stores body under key and tags. It is dropped when any invalidation
// happened since epoch, as the body may predate that mutation.
func (c *TagCache) Set(key string, tags []string, body []byte, epoch uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if epoch != c.epoch {
		return false
	}
	c.store[key] = entry{body: body, tags: tags}
	for _, t := range tags {
		keys, ok := c.byTag[t]
		if !ok {
			keys = make(map[string]struct{})
			c.byTag[t] = keys
		}
		keys[key] = struct{}{}
	}
	return true
}

// Invalidate drops every entry carrying tag and returns how many went.
func (c *TagCache) Invalidate(tag string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	keys := c.byTag[tag]
	delete(c.byTag, tag)
	for k := range keys {
		e, ok := c.store[k]
		if !ok {
			continue
		}
		delete(c.store, k)
		for _, other := range e.tags {
			if other != tag {
				delete(c.byTag[other], k)
			}
		}
	}
	return len(keys)
}

// Len reports the number of cached entries.
func (c *TagCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}
