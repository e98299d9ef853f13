// Package cache keeps rendered listing payloads in redis, keyed by the
// path they were served for. Invalidation only signals staleness; callers
// never wait on it or observe its outcome.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "cache:path:"

type Listing struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

func NewListing(rdb *redis.Client, ttl time.Duration, log *zap.Logger) *Listing {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Listing{rdb: rdb, ttl: ttl, log: log}
}

// Get returns the cached payload for path, or (nil, false) on miss.
// Redis errors count as misses.
func (c *Listing) Get(ctx context.Context, path string) ([]byte, bool) {
	b, err := c.rdb.Get(ctx, keyPrefix+path).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (c *Listing) Set(ctx context.Context, path string, payload []byte) {
	if err := c.rdb.Set(ctx, keyPrefix+path, payload, c.ttl).Err(); err != nil {
		c.log.Warn("cache set failed", zap.String("path", path), zap.Error(err))
	}
}

// Invalidate drops every cached payload under path. Fire-and-forget:
// a failed invalidation is logged and otherwise ignored, the TTL bounds
// how long a stale payload can survive.
func (c *Listing) Invalidate(ctx context.Context, path string) {
	iter := c.rdb.Scan(ctx, 0, keyPrefix+path+"*", 0).Iterator()
	keys := make([]string, 0, 8)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.log.Warn("cache scan failed", zap.String("path", path), zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn("cache invalidate failed", zap.String("path", path), zap.Error(err))
	}
}
