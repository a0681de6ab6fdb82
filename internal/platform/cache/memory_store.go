// Package cache provides TTL stores for raw upstream response bodies.
package cache

import (
	"context"
	"sync"
	"time"
)

// DefaultTTL is used when a store is constructed with a non-positive TTL.
const DefaultTTL = 5 * time.Minute

type entry struct {
	body      []byte
	expiresAt time.Time
}

// MemoryStore is an in-process TTL cache keyed by the inbound request URI.
// Expired entries are dropped lazily on read; there is no background sweeper.
// Reads and writes are single-key atomic, which is all the proxy needs.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore creates a MemoryStore. If ttl is 0 or negative, it defaults
// to DefaultTTL. The clock is time.Now; tests swap it via WithClock.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// WithClock replaces the store's clock and returns the store. Test use only.
func (s *MemoryStore) WithClock(now func() time.Time) *MemoryStore {
	s.now = now
	return s
}

// Get returns the cached body for key, or false if the key is absent or the
// entry has expired. An expired entry is removed on the way out.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.now().After(e.expiresAt) {
		s.mu.Lock()
		// Re-check under the write lock: a concurrent Set may have refreshed it.
		if cur, ok := s.entries[key]; ok && s.now().After(cur.expiresAt) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, false
	}
	return e.body, true
}

// Set stores body under key with a fresh expiry, overwriting any previous
// entry for the same key.
func (s *MemoryStore) Set(_ context.Context, key string, body []byte) {
	s.mu.Lock()
	s.entries[key] = entry{body: body, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()
}

// Len reports the number of entries currently held, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
