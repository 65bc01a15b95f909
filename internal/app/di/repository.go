// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	catalogadapters "shop_backend/internal/feature/catalog/adapters"
	catalogusecase "shop_backend/internal/feature/catalog/usecase"
	"shop_backend/internal/platform/cache"
	"shop_backend/internal/shared/envutil"
)

// NewProductRepository creates a ProductRepository implementation.
// If Redis is available, the GORM repository is wrapped with the Redis cache.
// Otherwise, it reads the database directly.
func NewProductRepository(rdb *redis.Client, db *gorm.DB) catalogusecase.ProductRepository {
	repo := catalogadapters.NewProductRepository(db)
	if rdb == nil {
		return repo
	}
	ttl := envutil.Duration("CATALOG_CACHE_TTL", cache.DefaultTTL)
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	return cache.NewCachingProductRepository(rdb, ttl, repo, cache.DefaultNamespace)
}
