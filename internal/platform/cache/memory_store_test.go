package cache

import (
	"context"
	"testing"
	"time"
)

func TestNewMemoryStore_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ttl         time.Duration
		expectedTTL time.Duration
	}{
		{name: "zero ttl uses default", ttl: 0, expectedTTL: DefaultTTL},
		{name: "negative ttl uses default", ttl: -time.Minute, expectedTTL: DefaultTTL},
		{name: "custom ttl preserved", ttl: 10 * time.Minute, expectedTTL: 10 * time.Minute},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := NewMemoryStore(tt.ttl)
			if s.ttl != tt.expectedTTL {
				t.Errorf("expected TTL %v, got %v", tt.expectedTTL, s.ttl)
			}
		})
	}
}

func TestMemoryStore_GetSet(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore(5 * time.Minute)
	ctx := context.Background()

	if _, ok := s.Get(ctx, "/api/coins/markets?vs_currency=usd"); ok {
		t.Error("expected miss on empty store")
	}

	s.Set(ctx, "/api/coins/markets?vs_currency=usd", []byte(`[{"id":"bitcoin"}]`))

	body, ok := s.Get(ctx, "/api/coins/markets?vs_currency=usd")
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if string(body) != `[{"id":"bitcoin"}]` {
		t.Errorf("unexpected body %q", body)
	}

	// A different query string is a different key.
	if _, ok := s.Get(ctx, "/api/coins/markets?vs_currency=eur"); ok {
		t.Error("expected miss for different query string")
	}
}

func TestMemoryStore_Overwrite(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore(5 * time.Minute)
	ctx := context.Background()

	s.Set(ctx, "/api/coins/bitcoin", []byte(`{"v":1}`))
	s.Set(ctx, "/api/coins/bitcoin", []byte(`{"v":2}`))

	body, ok := s.Get(ctx, "/api/coins/bitcoin")
	if !ok {
		t.Fatal("expected hit")
	}
	if string(body) != `{"v":2}` {
		t.Errorf("expected last write to win, got %q", body)
	}
	if s.Len() != 1 {
		t.Errorf("expected a single entry per key, got %d", s.Len())
	}
}

func TestMemoryStore_LazyExpiry(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := base
	s := NewMemoryStore(5 * time.Minute).WithClock(func() time.Time { return now })
	ctx := context.Background()

	s.Set(ctx, "/api/coins/bitcoin", []byte(`{"id":"bitcoin"}`))

	// Just before expiry: still a hit.
	now = base.Add(5 * time.Minute)
	if _, ok := s.Get(ctx, "/api/coins/bitcoin"); !ok {
		t.Error("expected hit at exactly TTL")
	}

	// Just after expiry: miss, and the entry is dropped.
	now = base.Add(5*time.Minute + time.Second)
	if _, ok := s.Get(ctx, "/api/coins/bitcoin"); ok {
		t.Error("expected miss after TTL elapsed")
	}
	if s.Len() != 0 {
		t.Errorf("expected expired entry to be removed, got %d entries", s.Len())
	}

	// A fresh Set restores the key with a new expiry.
	s.Set(ctx, "/api/coins/bitcoin", []byte(`{"id":"bitcoin","fresh":true}`))
	if _, ok := s.Get(ctx, "/api/coins/bitcoin"); !ok {
		t.Error("expected hit after re-populating expired key")
	}
}
