package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"cooked-flow/config"
	configsqlite "cooked-flow/config/sqlite"
	"cooked-flow/internal/model"
	"cooked-flow/internal/recipe"
	"cooked-flow/internal/recipe/repository"
	recipeSqlite "cooked-flow/internal/recipe/repository/sqlite"
	recipeSupabase "cooked-flow/internal/recipe/repository/supabase"
	"cooked-flow/internal/recipe/usecase"
	"cooked-flow/pkg/log"
	"cooked-flow/pkg/supabase"
)

// main is the entry point for the bulk recipe importer.
// This binary streams a RecipeNLG-style CSV dump into the configured store.
//
// Pattern:
//  1. Initialize infra (same as cmd/api/main.go)
//  2. Pick the store (Supabase when configured, SQLite otherwise)
//  3. Run one mode: import, import --purge, or --normalize
func main() {
	var (
		filePath  = flag.String("file", "", "path to the recipe CSV dump")
		purge     = flag.Bool("purge", false, "delete all stored recipes before importing")
		normalize = flag.Bool("normalize", false, "re-parse stored ingredient lines instead of importing")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting recipe importer...")

	// Store selection
	var repo repository.Repository
	if cfg.Supabase.URL != "" {
		client := supabase.NewClient(supabase.Config{
			URL:            cfg.Supabase.URL,
			APIKey:         cfg.Supabase.APIKey,
			ServiceRoleKey: cfg.Supabase.ServiceRoleKey,
			Timeout:        cfg.Supabase.Timeout,
		})
		repo = recipeSupabase.New(client, logger)
		logger.Infof(ctx, "Store: Supabase (%s)", cfg.Supabase.URL)
	} else {
		db, dbErr := configsqlite.Connect(ctx, cfg.SQLite.Path)
		if dbErr != nil {
			logger.Error(ctx, "Failed to open SQLite store: ", dbErr)
			os.Exit(1)
		}
		defer configsqlite.Disconnect(db)
		repo = recipeSqlite.New(db, logger)
		logger.Infof(ctx, "Store: SQLite (%s)", cfg.SQLite.Path)
	}

	uc := usecase.New(logger, repo, usecase.Config{
		ChunkSize:      cfg.Import.ChunkSize,
		RatePerSecond:  cfg.Import.RatePerSecond,
		DedupCacheSize: cfg.Import.DedupCacheSize,
		DedupCacheTTL:  cfg.Import.DedupCacheTTL,
	})

	sc := model.Scope{
		UserID:    "importer",
		RequestID: uuid.NewString(),
	}

	if *normalize {
		out, runErr := uc.ReNormalize(ctx, sc)
		if runErr != nil {
			logger.Error(ctx, "Re-normalize failed: ", runErr)
			os.Exit(1)
		}
		logger.Infof(ctx, "Re-normalize done: scanned=%d updated=%d", out.Scanned, out.Updated)
		return
	}

	if *filePath == "" {
		fmt.Println("Usage: importer -file <recipes.csv> [-purge] | importer -normalize")
		os.Exit(2)
	}

	f, err := os.Open(*filePath)
	if err != nil {
		logger.Error(ctx, "Failed to open CSV file: ", err)
		os.Exit(1)
	}
	defer f.Close()

	summary, err := uc.ImportCSV(ctx, sc, recipe.ImportCSVInput{
		Reader: f,
		Purge:  *purge || cfg.Import.Purge,
	})
	if err != nil {
		logger.Error(ctx, "Import failed: ", err)
		os.Exit(1)
	}

	logger.Infof(ctx, "Import %s done: read=%d inserted=%d duplicates=%d invalid=%d failed=%d",
		summary.BatchID, summary.Read, summary.Inserted, summary.Duplicates, summary.Invalid, summary.Failed)
	for _, fr := range summary.Failures {
		logger.Warnf(ctx, "row %d (%q): %s", fr.Row, fr.Title, fr.Reason)
	}
}
