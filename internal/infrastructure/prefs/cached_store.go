package prefs

import (
	"context"
	"time"

	"github.com/daybreakhq/Daybreak/Backend_go/pkg/logger"
	"go.uber.org/zap"
)

var log = logger.NewLogger()

// Cache is the slice of the Redis client the cached store uses. Preference
// keys double as the cache record family, so per-family TTLs and hit/miss
// metrics come for free.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	TTLFor(family string) time.Duration
	TrackCacheEvent(hit bool, cacheType string)
}

// CachedStore decorates a Store with a Redis read-through cache. Cache
// failures degrade to the inner store; they are logged, never surfaced.
type CachedStore struct {
	inner Store
	redis Cache
}

func NewCachedStore(inner Store, redis Cache) *CachedStore {
	return &CachedStore{
		inner: inner,
		redis: redis,
	}
}

func (s *CachedStore) cacheKey(key string) string {
	return "prefs:" + key
}

func (s *CachedStore) Get(ctx context.Context, key string) (string, bool, error) {
	if cached, err := s.redis.Get(ctx, s.cacheKey(key)); err == nil && cached != "" {
		s.redis.TrackCacheEvent(true, key)
		return cached, true, nil
	}
	s.redis.TrackCacheEvent(false, key)

	value, found, err := s.inner.Get(ctx, key)
	if err != nil || !found {
		return value, found, err
	}

	if err := s.redis.Set(ctx, s.cacheKey(key), value, s.redis.TTLFor(key)); err != nil {
		log.Error("Failed to cache preference", zap.String("key", key), zap.Error(err))
	}
	return value, true, nil
}

func (s *CachedStore) Set(ctx context.Context, key, value string) error {
	if err := s.inner.Set(ctx, key, value); err != nil {
		return err
	}
	// Write-through keeps readers on the fresh value without waiting for TTL.
	if err := s.redis.Set(ctx, s.cacheKey(key), value, s.redis.TTLFor(key)); err != nil {
		log.Error("Failed to update cached preference", zap.String("key", key), zap.Error(err))
	}
	return nil
}

func (s *CachedStore) Delete(ctx context.Context, key string) error {
	if err := s.inner.Delete(ctx, key); err != nil {
		return err
	}
	if err := s.redis.Delete(ctx, s.cacheKey(key)); err != nil {
		log.Error("Failed to drop cached preference", zap.String("key", key), zap.Error(err))
	}
	return nil
}
