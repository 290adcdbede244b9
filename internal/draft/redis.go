// internal/draft/redis.go
//
// Redis-backed draft store.  Drafts are JSON values under
// "onboarding:draft:<tenant_id>" with a rolling TTL.

package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "onboarding:draft:"

// RedisStore persists drafts in Redis.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore wraps rdb.  ttl <= 0 falls back to DefaultTTL.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{rdb: rdb, ttl: ttl}
}

// Put implements Store.
func (s *RedisStore) Put(ctx context.Context, d Draft) error {
	d.UpdatedAt = time.Now().UTC()
	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("draft put %s: %w", d.TenantID, err)
	}
	if err := s.rdb.Set(ctx, keyPrefix+d.TenantID, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("draft put %s: %w", d.TenantID, err)
	}
	return nil
}

// Get implements Store.
func (s *RedisStore) Get(ctx context.Context, tenantID string) (Draft, error) {
	payload, err := s.rdb.Get(ctx, keyPrefix+tenantID).Bytes()
	if errors.Is(err, redis.Nil) {
		return Draft{}, ErrNotFound
	}
	if err != nil {
		return Draft{}, fmt.Errorf("draft get %s: %w", tenantID, err)
	}
	var d Draft
	if err := json.Unmarshal(payload, &d); err != nil {
		return Draft{}, fmt.Errorf("draft get %s: %w", tenantID, err)
	}
	return d, nil
}

// Touch implements Store.
func (s *RedisStore) Touch(ctx context.Context, tenantID string) error {
	ok, err := s.rdb.Expire(ctx, keyPrefix+tenantID, s.ttl).Result()
	if err != nil {
		return fmt.Errorf("draft touch %s: %w", tenantID, err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// Delete implements Store.
func (s *RedisStore) Delete(ctx context.Context, tenantID string) error {
	if err := s.rdb.Del(ctx, keyPrefix+tenantID).Err(); err != nil {
		return fmt.Errorf("draft delete %s: %w", tenantID, err)
	}
	return nil
}
