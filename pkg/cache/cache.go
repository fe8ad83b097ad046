// Package cache holds the key-value stores the resolver keeps resolved keys in.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/jwks-resolver/jwks-resolver/pkg/config"
)

// Cache is a key-value store. Expiry and eviction belong to the implementation.
type Cache interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{})
}

// Noop never stores anything
type Noop struct{}

// Get always reports a miss
func (Noop) Get(string) (interface{}, bool) { return nil, false }

// Set discards the value
func (Noop) Set(string, interface{}) {}

// Memory is an in-process cache with a fixed TTL per entry
type Memory struct {
	c *gocache.Cache
}

// NewMemory creates a memory cache. A non-positive cleanup interval disables
// the background janitor; expired entries are then only dropped on access.
func NewMemory(ttl, cleanupInterval time.Duration) *Memory {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	return &Memory{c: gocache.New(ttl, cleanupInterval)}
}

// Get returns a non-expired value
func (m *Memory) Get(key string) (interface{}, bool) {
	return m.c.Get(key)
}

// Set stores value with the default TTL
func (m *Memory) Set(key string, value interface{}) {
	m.c.SetDefault(key, value)
}

// Delete removes key
func (m *Memory) Delete(key string) {
	m.c.Delete(key)
}

// Flush removes all entries
func (m *Memory) Flush() {
	m.c.Flush()
}

// ItemCount returns the number of entries, expired ones included
func (m *Memory) ItemCount() int {
	return m.c.ItemCount()
}

// FromConfig returns a Memory cache when caching is enabled and Noop otherwise
func FromConfig(cfg config.CacheConfig) Cache {
	if !cfg.Enabled {
		return Noop{}
	}
	return NewMemory(cfg.TTL.Duration, cfg.CleanupInterval.Duration)
}
