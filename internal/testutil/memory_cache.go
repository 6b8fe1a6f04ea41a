package testutil

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/zainulabideendev/estateplan/pkg/errors"
)

// MemoryCache is a map-backed cache with the same miss semantics as the
// redis adapter: a missing or expired key reports ErrCodeCacheMiss. Values
// round-trip through JSON so tests exercise the same serialization the real
// cache does.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry

	Gets    int
	Sets    int
	Deletes int
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewMemoryCache creates an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]memoryEntry)}
}

func (c *MemoryCache) Get(_ context.Context, key string, dest interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Gets++
	entry, ok := c.entries[key]
	if !ok || (!entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt)) {
		delete(c.entries, key)
		return errors.New(errors.ErrCodeCacheMiss, "cache miss").WithDetail("key=" + key)
	}
	if err := json.Unmarshal(entry.data, dest); err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "failed to decode cached value")
	}
	return nil
}

func (c *MemoryCache) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "failed to encode value")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Sets++
	entry := memoryEntry{data: data}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	c.entries[key] = entry
	return nil
}

func (c *MemoryCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Deletes++
	for _, key := range keys {
		delete(c.entries, key)
	}
	return nil
}

// Contains reports whether a live entry exists for key.
func (c *MemoryCache) Contains(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	return ok && (entry.expiresAt.IsZero() || time.Now().Before(entry.expiresAt))
}
