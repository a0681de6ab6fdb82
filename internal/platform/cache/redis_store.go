package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a TTL cache backed by Redis, for deployments that run more
// than one proxy instance against the same upstream quota. Writes are best
// effort: a Redis failure degrades to a cache miss, never to a request error.
type RedisStore struct {
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewRedisStore creates a RedisStore. If ttl is 0 or negative, it defaults
// to DefaultTTL. If namespace is empty, it uses "proxy".
func NewRedisStore(rdb *redis.Client, ttl time.Duration, namespace string) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if namespace == "" {
		namespace = "proxy"
	}
	return &RedisStore{rdb: rdb, ttl: ttl, namespace: namespace}
}

// Get returns the cached body for key, or false on miss. Expiry is enforced
// by Redis itself via the TTL attached on Set.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	b, err := s.rdb.Get(ctx, s.namespace+":"+key).Bytes()
	if err != nil || len(b) == 0 {
		return nil, false
	}
	return b, true
}

// Set stores body under key with the configured TTL. Best effort.
func (s *RedisStore) Set(ctx context.Context, key string, body []byte) {
	_ = s.rdb.Set(ctx, s.namespace+":"+key, body, s.ttl).Err()
}
