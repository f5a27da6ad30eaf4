// Command marketctl is the operator CLI: schema migrations, role management,
// development tokens and demo data.
//
// Usage:
//
//	marketctl migrate up|down|status
//	marketctl promote --email=user@example.com [--role=ADMIN]
//	marketctl token --email=user@example.com
//	marketctl seed
//
// Configuration is loaded the same way as the server (CONFIG_PATH, .env,
// environment).
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/heartmarshall/servicehub-backend/internal/adapter/postgres"
	"github.com/heartmarshall/servicehub-backend/internal/app"
	"github.com/heartmarshall/servicehub-backend/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "marketctl: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "marketctl",
		Usage:   "operate the servicehub backend",
		Version: app.BuildVersion(),
		Commands: []*cli.Command{
			migrateCommand(),
			promoteCommand(),
			tokenCommand(),
			seedCommand(),
		},
	}
}

// env is what every subcommand needs: configuration and a logger.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
}

func loadEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, logger: app.NewLogger(cfg.Log)}, nil
}

// withComponents opens a pool, wires services and runs fn.
func withComponents(c *cli.Context, fn func(e *env, comps *app.Components) error) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	pool, err := postgres.NewPool(c.Context, e.cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	return fn(e, app.NewComponents(e.logger, e.cfg, pool, nil))
}
