// Package redis connects the optional Redis cache.
package redis

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"shop_backend/internal/shared/envutil"
)

// Config holds the Redis connection settings.
type Config struct {
	Addr     string
	Password string
	DB       int
	PoolSize int
}

// LoadConfigFromEnv は REDIS_* 環境変数から接続設定を読み込みます。
func LoadConfigFromEnv() Config {
	return Config{
		Addr:     envutil.String("REDIS_HOST", "localhost") + ":" + envutil.String("REDIS_PORT", "6379"),
		Password: envutil.String("REDIS_PASSWORD", ""),
		DB:       envutil.Int("REDIS_DB", 0),
		PoolSize: envutil.Int("REDIS_POOL_SIZE", 10),
	}
}

// NewRedisClient opens a client and verifies it with PING.
// A failed ping closes the client and returns the error so callers can run without cache.
func NewRedisClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	// 接続確認
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		slog.Error("Redis connection failed", "address", cfg.Addr, "error", err)
		_ = rdb.Close()
		return nil, err
	}

	slog.Info("Redis connection successful", "address", cfg.Addr)
	return rdb, nil
}
