package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"garment-orders/internal/logger"
	"garment-orders/internal/models"
)

const listKey = "orders:list"

// Cache is a read-through cache of the hosted collection. Reads hit redis
// first; every successful mutation either rewrites the cached list in place
// (optimistic update) or drops it so the next read refetches. Cache failures
// are logged and treated as misses.
type Cache struct {
	Client *redis.Client
	TTL    time.Duration
	Logger *logger.Logger
}

func NewCache(client *redis.Client, ttl time.Duration, log *logger.Logger) *Cache {
	return &Cache{Client: client, TTL: ttl, Logger: log}
}

// Get returns the cached order list, reporting whether it was warm.
func (c *Cache) Get(ctx context.Context) ([]models.Order, bool) {
	raw, err := c.Client.Get(ctx, listKey).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.Logger.Warn("REDIS", fmt.Sprintf("cache read failed: %v", err))
		return nil, false
	}

	var orders []models.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		c.Logger.Warn("REDIS", fmt.Sprintf("cache entry corrupt, dropping: %v", err))
		c.Invalidate(ctx)
		return nil, false
	}
	return orders, true
}

// Set stores the order list under the configured TTL.
func (c *Cache) Set(ctx context.Context, orders []models.Order) {
	raw, err := json.Marshal(orders)
	if err != nil {
		c.Logger.Warn("REDIS", fmt.Sprintf("cache encode failed: %v", err))
		return
	}
	if err := c.Client.Set(ctx, listKey, raw, c.TTL).Err(); err != nil {
		c.Logger.Warn("REDIS", fmt.Sprintf("cache write failed: %v", err))
	}
}

// Invalidate drops the cached list.
func (c *Cache) Invalidate(ctx context.Context) {
	if err := c.Client.Del(ctx, listKey).Err(); err != nil {
		c.Logger.Warn("REDIS", fmt.Sprintf("cache invalidate failed: %v", err))
	}
}
