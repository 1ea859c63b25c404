package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	dom "Platform/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyList = "orders:list:"

// OrderCache caches per-user order lists in Redis.
type OrderCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewOrderCache returns a new OrderCache.
func NewOrderCache(rdb *redis.Client, ttl time.Duration) *OrderCache {
	return &OrderCache{rdb: rdb, ttl: ttl}
}

// GetList returns the cached list for the user or nil on a miss. A cached
// empty list comes back as a non-nil empty slice, so callers can tell it
// apart from a miss.
func (c *OrderCache) GetList(ctx context.Context, userID int64) ([]dom.Order, error) {
	b, err := c.rdb.Get(ctx, listKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	list := []dom.Order{}
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []dom.Order{}
	}
	return list, nil
}

// SetList stores the user's list in cache. A nil list is stored as an
// empty array so GetList never confuses it with an absent key.
func (c *OrderCache) SetList(ctx context.Context, userID int64, list []dom.Order) error {
	if list == nil {
		list = []dom.Order{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, listKey(userID), b, c.ttl).Err()
}

// Invalidate removes the user's cached list (cache invalidation on write).
func (c *OrderCache) Invalidate(ctx context.Context, userID int64) error {
	return c.rdb.Del(ctx, listKey(userID)).Err()
}

func listKey(userID int64) string {
	return keyList + strconv.FormatInt(userID, 10)
}
