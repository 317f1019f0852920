package ratelimit

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a Redis-backed Store for multi-instance deployments. The
// counter and its TTL are managed atomically with a small Lua script so
// concurrent increments from different instances agree on the window.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// incrScript increments the key and sets the window TTL on first increment.
// Returns the counter value and the remaining TTL in milliseconds.
var incrScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
return {current, ttl}
`)

// NewRedisStore creates a Redis-backed counter store. The prefix namespaces
// rate limit keys within the Redis keyspace.
func NewRedisStore(client redis.UniversalClient, prefix string) (*RedisStore, error) {
	if client == nil {
		return nil, ErrStoreRequired
	}
	if prefix == "" {
		prefix = "ratelimit"
	}

	return &RedisStore{client: client, prefix: prefix}, nil
}

// IncrementAndGet atomically increments the counter for the key.
func (s *RedisStore) IncrementAndGet(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	res, err := incrScript.Run(ctx, s.client, []string{s.prefix + ":" + key}, window.Milliseconds()).Result()
	if err != nil {
		return 0, 0, errors.Join(ErrStoreFailure, err)
	}

	vals, ok := res.([]interface{})
	if !ok || len(vals) != 2 {
		return 0, 0, ErrStoreFailure
	}

	current, ok := vals[0].(int64)
	if !ok {
		return 0, 0, ErrStoreFailure
	}

	ttlMs, ok := vals[1].(int64)
	if !ok {
		return 0, 0, ErrStoreFailure
	}
	if ttlMs < 0 {
		ttlMs = window.Milliseconds()
	}

	return current, time.Duration(ttlMs) * time.Millisecond, nil
}

// Delete removes the given key from the store.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+":"+key).Err(); err != nil {
		return errors.Join(ErrStoreFailure, err)
	}
	return nil
}
