package report

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// summaryCacheKey stores the latest summary snapshot in redis.
const summaryCacheKey = "reports:summary"

// snapshotStore is the slice of the redis client the cache needs.
type snapshotStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// SnapshotCache serves summaries from redis when a fresh snapshot exists.
//
// The cache only shortens the window between scans; it adds no consistency.
// Any cache failure falls through to a direct computation.
type SnapshotCache struct {
	inner Summarizer
	store snapshotStore
	ttl   time.Duration
}

// NewSnapshotCache wraps a summarizer with a redis snapshot cache.
// A nil client disables caching.
func NewSnapshotCache(inner Summarizer, rdb *redis.Client, ttl time.Duration) *SnapshotCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	cache := &SnapshotCache{inner: inner, ttl: ttl}
	if rdb != nil {
		cache.store = rdb
	}
	return cache
}

// Summarize returns the cached snapshot when present, computing and storing
// a fresh one otherwise.
func (c *SnapshotCache) Summarize(ctx context.Context) (Summary, error) {
	if c.store == nil {
		return c.inner.Summarize(ctx)
	}

	data, errGet := c.store.Get(ctx, summaryCacheKey).Bytes()
	if errGet == nil {
		var cached Summary
		if errDecode := json.Unmarshal(data, &cached); errDecode == nil {
			return cached, nil
		}
	} else if !errors.Is(errGet, redis.Nil) {
		log.WithError(errGet).Warn("summary cache read failed")
	}

	fresh, errSummarize := c.inner.Summarize(ctx)
	if errSummarize != nil {
		return Summary{}, errSummarize
	}

	if encoded, errEncode := json.Marshal(fresh); errEncode == nil {
		if errSet := c.store.Set(ctx, summaryCacheKey, encoded, c.ttl).Err(); errSet != nil {
			log.WithError(errSet).Warn("summary cache write failed")
		}
	}
	return fresh, nil
}
