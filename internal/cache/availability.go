package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/T3nda22/DungogWebsite2c/internal/config"
)

func NewClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
}

// Availability caches free-day counts per item. One hash per item keyed
// by horizon, dropped whole on any calendar mutation for that item.
type Availability struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAvailability(rdb *redis.Client) *Availability {
	return &Availability{
		rdb: rdb,
		ttl: 5 * time.Minute,
	}
}

func itemKey(itemID uint) string {
	return fmt.Sprintf("availability:item:%d", itemID)
}

func (c *Availability) GetCount(ctx context.Context, itemID uint, horizonDays int) (int, bool) {
	val, err := c.rdb.HGet(ctx, itemKey(itemID), strconv.Itoa(horizonDays)).Result()
	if err != nil {
		return 0, false
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (c *Availability) SetCount(ctx context.Context, itemID uint, horizonDays int, count int) {
	key := itemKey(itemID)

	// cache is best effort; errors never reach the caller
	if err := c.rdb.HSet(ctx, key, strconv.Itoa(horizonDays), count).Err(); err != nil {
		return
	}
	c.rdb.Expire(ctx, key, c.ttl)
}

func (c *Availability) Invalidate(ctx context.Context, itemID uint) {
	c.rdb.Del(ctx, itemKey(itemID))
}
