package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cooked-flow/config"
	configsqlite "cooked-flow/config/sqlite"
	_ "cooked-flow/docs" // Swagger docs
	"cooked-flow/internal/httpserver"
	"cooked-flow/pkg/log"
)

// @title       Cooked Flow API
// @description Endurance nutrition planning: workout CSV upload, daily fueling targets, stored plans.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Cooked Flow API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage (optional; plans are compute-only without it)
	var db *sql.DB
	if cfg.SQLite.Path != "" {
		db, err = configsqlite.Connect(ctx, cfg.SQLite.Path)
		if err != nil {
			logger.Error(ctx, "Failed to open SQLite store: ", err)
			return
		}
		defer configsqlite.Disconnect(db)
		logger.Infof(ctx, "SQLite store: %s", cfg.SQLite.Path)
	} else {
		logger.Warn(ctx, "SQLITE_PATH not set, plans will not be persisted")
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		CORSOrigins: cfg.CORS.AllowedOrigins,
		SQLiteDB:    db,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
