// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/catalog/usecase"
)

const (
	DefaultTTL       = 10 * time.Minute
	DefaultNamespace = "products"
)

// CachingProductRepository decorates a ProductRepository with Redis caching.
// Per-product JSON lives under "<ns>:<id>"; latest-product lists under "<ns>:latest:<limit>".
// Any write drops the touched product key and every latest list.
type CachingProductRepository struct {
	inner     usecase.ProductRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.ProductRepository = (*CachingProductRepository)(nil)

// NewCachingProductRepository decorates inner with Redis caching.
// A nil rdb disables caching entirely.
func NewCachingProductRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ProductRepository, namespace string) *CachingProductRepository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &CachingProductRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

func (c *CachingProductRepository) Create(ctx context.Context, p *entity.Product) error {
	if err := c.inner.Create(ctx, p); err != nil {
		return err
	}
	c.invalidate(ctx, 0)
	return nil
}

func (c *CachingProductRepository) Update(ctx context.Context, p *entity.Product) error {
	if err := c.inner.Update(ctx, p); err != nil {
		return err
	}
	c.invalidate(ctx, p.ID)
	return nil
}

func (c *CachingProductRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, id)
	return nil
}

// FindByID checks the cache first then falls back to the database.
func (c *CachingProductRepository) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.productKey(id)
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var p entity.Product
		if err := json.Unmarshal(b, &p); err == nil {
			return &p, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	p, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b, err := json.Marshal(p); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return p, nil
}

// FindByIDs serves what it can from one MGET and loads only the misses from the database.
// The result is ordered by id.
func (c *CachingProductRepository) FindByIDs(ctx context.Context, ids []uint) ([]entity.Product, error) {
	if c.rdb == nil || len(ids) == 0 {
		return c.inner.FindByIDs(ctx, ids)
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = c.productKey(id)
	}

	out := make([]entity.Product, 0, len(ids))
	missing := ids
	if vals, err := c.rdb.MGet(ctx, keys...).Result(); err == nil {
		missing = make([]uint, 0, len(ids))
		for i, v := range vals {
			s, ok := v.(string)
			if !ok {
				missing = append(missing, ids[i])
				continue
			}
			var p entity.Product
			if err := json.Unmarshal([]byte(s), &p); err != nil {
				_ = c.rdb.Del(ctx, keys[i]).Err()
				missing = append(missing, ids[i])
				continue
			}
			out = append(out, p)
		}
	} else {
		slog.Warn("product cache mget failed", "error", err)
	}

	if len(missing) > 0 {
		loaded, err := c.inner.FindByIDs(ctx, missing)
		if err != nil {
			return nil, err
		}
		if len(loaded) > 0 {
			_, err := c.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
				for i := range loaded {
					if b, err := json.Marshal(&loaded[i]); err == nil {
						pipe.Set(ctx, c.productKey(loaded[i].ID), b, c.ttl)
					}
				}
				return nil
			})
			if err != nil {
				slog.Warn("product cache fill failed", "error", err)
			}
		}
		out = append(out, loaded...)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// List is not cached; the full catalog is an admin/browse read.
func (c *CachingProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	return c.inner.List(ctx)
}

func (c *CachingProductRepository) ListLatest(ctx context.Context, limit int) ([]entity.Product, error) {
	if c.rdb == nil {
		return c.inner.ListLatest(ctx, limit)
	}

	key := c.latestKey(limit)
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Product
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.ListLatest(ctx, limit)
	if err != nil {
		return nil, err
	}
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// invalidate drops the product key (id > 0) and all latest lists. Best effort.
func (c *CachingProductRepository) invalidate(ctx context.Context, id uint) {
	if c.rdb == nil {
		return
	}
	if id > 0 {
		if err := c.rdb.Del(ctx, c.productKey(id)).Err(); err != nil {
			slog.Warn("product cache invalidation failed", "product_id", id, "error", err)
		}
	}
	if err := c.deleteByPattern(ctx, c.namespace+":latest:*"); err != nil {
		slog.Warn("product cache invalidation failed", "pattern", "latest", "error", err)
	}
}

func (c *CachingProductRepository) productKey(id uint) string {
	return fmt.Sprintf("%s:%d", c.namespace, id)
}

func (c *CachingProductRepository) latestKey(limit int) string {
	return fmt.Sprintf("%s:latest:%d", c.namespace, limit)
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingProductRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}
