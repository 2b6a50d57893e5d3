// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
	"sync"
	"time"
)

var _ CacheInterface = (*MemoryCache)(nil)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCache is a process-local CacheInterface, used when no Redis address is configured
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry

	now func() time.Time
}

func (c *MemoryCache) Get(_ context.Context, key Key) ([]byte, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[key.String()]
	c.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}

	if !e.expiresAt.IsZero() && !c.now().Before(e.expiresAt) {
		c.mu.Lock()
		// the entry may have been refreshed since the read lock was released
		if cur, ok := c.entries[key.String()]; ok && cur.expiresAt.Equal(e.expiresAt) {
			delete(c.entries, key.String())
		}
		c.mu.Unlock()
		return nil, false, nil
	}

	out := make([]byte, len(e.value))
	copy(out, e.value)

	return out, true, nil
}

func (c *MemoryCache) Set(_ context.Context, key Key, value []byte, ttl time.Duration) error {
	e := memoryEntry{value: make([]byte, len(value))}
	copy(e.value, value)

	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}

	c.mu.Lock()
	c.entries[key.String()] = e
	c.mu.Unlock()

	return nil
}

func (c *MemoryCache) Delete(_ context.Context, keys ...Key) error {
	c.mu.Lock()
	for _, k := range keys {
		delete(c.entries, k.String())
	}
	c.mu.Unlock()

	return nil
}

func (c *MemoryCache) Ping(context.Context) error {
	return nil
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}
