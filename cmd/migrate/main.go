// Command migrate applies the schema once and exits. Use it when the server runs with RUN_MIGRATIONS unset.
package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"shop_backend/internal/app/di"
	"shop_backend/internal/platform/db"
	"shop_backend/internal/platform/logging"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	logger, err := logging.New(logging.LoadConfigFromEnv(), os.Stdout)
	if err != nil {
		slog.Error("invalid logging configuration", "error", err)
		os.Exit(1)
	}

	gdb, err := db.Open(db.LoadConfigFromEnv(), logger)
	if err != nil {
		logger.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close(gdb) }()

	if err := db.Migrate(gdb, di.Models()...); err != nil {
		logger.Error("migration failed", "error", err)
		_ = db.Close(gdb)
		os.Exit(1)
	}
	logger.Info("migrate ok")
}
