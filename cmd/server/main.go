package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"shop_backend/internal/app/di"
	"shop_backend/internal/app/router"
	"shop_backend/internal/platform/db"
	"shop_backend/internal/platform/logging"
	infraredis "shop_backend/internal/platform/redis"
	"shop_backend/internal/shared/envutil"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	logger, err := logging.New(logging.LoadConfigFromEnv(), os.Stdout)
	if err != nil {
		slog.Error("invalid logging configuration", "error", err)
		os.Exit(1)
	}

	if err := run(logger); err != nil {
		logger.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	// db
	gdb, err := db.Open(db.LoadConfigFromEnv(), logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(gdb); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	if envutil.Bool("RUN_MIGRATIONS") {
		if err := db.Migrate(gdb, di.Models()...); err != nil {
			return err
		}
		logger.Info("migrations applied")
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(context.Background(), infraredis.LoadConfigFromEnv()); err != nil {
		logger.Warn("Redis unavailable. Running without cache.")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				logger.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	opts := di.LoadOptionsFromEnv()
	// JWT_SECRETチェック（開発中の注意喚起）
	if opts.JWTSecret == "" {
		logger.Warn("JWT_SECRET is not set. Set a strong secret in production.")
	}

	// ルータ生成
	app := di.NewApp(gdb, rdb, opts)
	engine := router.NewRouter(app.Handlers, logger, opts.AllowedOrigins)

	srv := &http.Server{
		Addr:              ":" + envutil.String("PORT", "8080"),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), envutil.Duration("SHUTDOWN_TIMEOUT", 15*time.Second))
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	// 応答済みの注文通知を送り切ってから DB と Redis を閉じる
	app.Drain()
	return <-errCh
}
