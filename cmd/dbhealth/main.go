package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/Zoli1212/awsflow/internal/common"
	repo "github.com/Zoli1212/awsflow/internal/repository"
)

// dbhealth opens the configured database, pings it, and reports the price
// catalog row counts. Useful as a deployment smoke check.
func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("DB_URL env var is required")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 1*time.Second, logger); err != nil {
		logger.Error("DB health: FAIL", "error", err)
		os.Exit(1)
	}
	logger.Info("DB health: OK")

	priceLists := repo.NewPriceListRepository(entc, logger)
	global, err := priceLists.ListGlobalEntries(ctx, nil)
	if err != nil {
		logger.Error("listing global price entries", "error", err)
		os.Exit(1)
	}
	logger.Info("global price list", "rows", len(global))
}
