package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	domain "github.com/bufu/storefront-api/internal/entity"
	"github.com/bufu/storefront-api/internal/usecase"
)

const (
	listKey       = "catalog:products"
	productPrefix = "catalog:product:"
)

// RedisProductCache is a read-through cache for catalog lookups.
// Order results are never cached; the provider record stays
// authoritative.
type RedisProductCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisProductCache(rdb *redis.Client, ttl time.Duration) *RedisProductCache {
	return &RedisProductCache{rdb: rdb, ttl: ttl}
}

func (c *RedisProductCache) RecallList(ctx context.Context) ([]domain.Product, bool, error) {
	raw, err := c.rdb.Get(ctx, listKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var ps []domain.Product
	if err := json.Unmarshal(raw, &ps); err != nil {
		return nil, false, err
	}
	return ps, true, nil
}

func (c *RedisProductCache) RememberList(ctx context.Context, ps []domain.Product) error {
	raw, err := json.Marshal(ps)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, listKey, raw, c.ttl).Err()
}

func (c *RedisProductCache) Recall(ctx context.Context, id string) (domain.Product, bool, error) {
	raw, err := c.rdb.Get(ctx, productPrefix+id).Bytes()
	if err == redis.Nil {
		return domain.Product{}, false, nil
	}
	if err != nil {
		return domain.Product{}, false, err
	}
	var p domain.Product
	if err := json.Unmarshal(raw, &p); err != nil {
		return domain.Product{}, false, err
	}
	return p, true, nil
}

func (c *RedisProductCache) Remember(ctx context.Context, p domain.Product) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, productPrefix+p.ID, raw, c.ttl).Err()
}

var _ usecase.ProductCache = (*RedisProductCache)(nil)
