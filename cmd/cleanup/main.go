// Command cleanup purges search history older than
// search.history_retention_days; the linked search results cascade.
// Run it from cron. It exits non-zero when the purge fails.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heartmarshall/servicehub-backend/internal/adapter/postgres"
	"github.com/heartmarshall/servicehub-backend/internal/app"
	"github.com/heartmarshall/servicehub-backend/internal/config"
)

const purgeTimeout = 5 * time.Minute

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "cleanup: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := app.NewLogger(cfg.Log).With("job", "history-cleanup")

	ctx, cancel := context.WithTimeout(ctx, purgeTimeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	started := time.Now()
	deleted, err := app.NewComponents(logger, cfg, pool, nil).SearchLog.PurgeOlderThan(ctx, cfg.Search.HistoryRetentionDays)
	if err != nil {
		return fmt.Errorf("purge history older than %d days: %w", cfg.Search.HistoryRetentionDays, err)
	}

	logger.InfoContext(ctx, "cleanup finished",
		slog.Int64("deleted", deleted),
		slog.Duration("took", time.Since(started)),
	)
	return nil
}
