// Package dictionary caches word-detail lookups keyed by word and language.
//
// The cache never evicts: entries live as long as the process (or, with a
// FileCache layer, as long as the cache directory).
package dictionary

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Cache stores records by key.
type Cache interface {
	Get(key Key) (Record, bool)
	Put(key Key, record Record) error
}

// MemoryCache is an unbounded in-process Cache.
type MemoryCache struct {
	mu      sync.RWMutex
	records map[Key]Record
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		records: make(map[Key]Record),
	}
}

func (c *MemoryCache) Get(key Key) (Record, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	record, ok := c.records[key]
	return record, ok
}

func (c *MemoryCache) Put(key Key, record Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records[key] = record
	return nil
}

// Len returns the number of cached records.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// LayeredCache reads through a fast cache backed by a persistent one.
// Hits in the persistent layer are promoted to the fast layer.
type LayeredCache struct {
	fast       Cache
	persistent Cache
}

func NewLayeredCache(fast, persistent Cache) *LayeredCache {
	return &LayeredCache{
		fast:       fast,
		persistent: persistent,
	}
}

func (c *LayeredCache) Get(key Key) (Record, bool) {
	if record, ok := c.fast.Get(key); ok {
		return record, true
	}
	record, ok := c.persistent.Get(key)
	if !ok {
		return Record{}, false
	}
	if err := c.fast.Put(key, record); err != nil {
		slog.Default().Warn("failed to promote a cached record", "key", key.String(), "error", err)
	}
	return record, true
}

func (c *LayeredCache) Put(key Key, record Record) error {
	if err := c.fast.Put(key, record); err != nil {
		return fmt.Errorf("fast.Put > %w", err)
	}
	if err := c.persistent.Put(key, record); err != nil {
		return fmt.Errorf("persistent.Put > %w", err)
	}
	return nil
}

// Reader looks a word up in the cache and falls back to fetch on a miss.
type Reader struct {
	cache Cache
}

func NewReader(cache Cache) *Reader {
	return &Reader{
		cache: cache,
	}
}

// Lookup returns the cached record for key, or calls fetch and caches its result.
// hit reports whether the record came from the cache. Failed fetches are not cached.
func (r *Reader) Lookup(
	ctx context.Context,
	key Key,
	fetch func(ctx context.Context) (Record, error),
) (record Record, hit bool, err error) {
	if cached, ok := r.cache.Get(key); ok {
		return cached, true, nil
	}

	record, err = fetch(ctx)
	if err != nil {
		return Record{}, false, fmt.Errorf("fetch > %w", err)
	}
	if err := r.cache.Put(key, record); err != nil {
		// The lookup itself succeeded, so the caller still gets the record.
		slog.Default().Warn("failed to cache a word detail", "key", key.String(), "error", err)
	}
	return record, false, nil
}
