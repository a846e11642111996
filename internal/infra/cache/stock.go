// Package cache holds the redis-backed remaining-stock cache. It only ever
// serves the public stock query; reservation decisions always go through the
// durable store's atomic operations.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"tipi-reserve/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const stockKey = "stock:remaining"

type StockCache struct {
	rdb   *redis.Client
	store queries.StockReadStore
	ttl   time.Duration
}

func NewStockCache(rdb *redis.Client, store queries.StockReadStore, ttl time.Duration) *StockCache {
	return &StockCache{rdb: rdb, store: store, ttl: ttl}
}

// ListStock reads through the cache. Any cache failure falls back to the
// durable store; stale reads are bounded by the TTL plus invalidation on
// every stock mutation.
func (c *StockCache) ListStock(ctx context.Context) ([]*queries.StockView, error) {
	if c.rdb != nil {
		raw, err := c.rdb.Get(ctx, stockKey).Bytes()
		if err == nil {
			var views []*queries.StockView
			if jsonErr := json.Unmarshal(raw, &views); jsonErr == nil {
				return views, nil
			}
		} else if err != redis.Nil {
			slog.Warn("stock cache read failed", "error", err)
		}
	}

	views, err := c.store.ListStock(ctx)
	if err != nil {
		return nil, err
	}

	if c.rdb != nil {
		if raw, err := json.Marshal(views); err == nil {
			if err := c.rdb.Set(ctx, stockKey, raw, c.ttl).Err(); err != nil {
				slog.Warn("stock cache write failed", "error", err)
			}
		}
	}
	return views, nil
}

func (c *StockCache) Invalidate(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, stockKey).Err()
}

func NewRedisClient(addr string) *redis.Client {
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{Addr: addr})
}
