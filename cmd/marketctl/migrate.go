package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/heartmarshall/servicehub-backend/internal/adapter/postgres"
)

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "apply or inspect database migrations",
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply all pending migrations",
				Action: withMigrator(func(c *cli.Context, m *postgres.Migrator) error {
					res, err := m.Up(c.Context)
					for _, r := range res {
						fmt.Fprintf(c.App.Writer, "OK   %05d %s (%s)\n", r.Source.Version, r.Source.Path, r.Duration.Round(time.Millisecond))
					}
					if err != nil {
						return err
					}
					if len(res) == 0 {
						fmt.Fprintln(c.App.Writer, "no pending migrations")
					}
					return nil
				}),
			},
			{
				Name:  "down",
				Usage: "roll back the most recent migration",
				Action: withMigrator(func(c *cli.Context, m *postgres.Migrator) error {
					r, err := m.Down(c.Context)
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "DOWN %05d %s\n", r.Source.Version, r.Source.Path)
					return nil
				}),
			},
			{
				Name:  "status",
				Usage: "list migrations and their state",
				Action: withMigrator(func(c *cli.Context, m *postgres.Migrator) error {
					st, err := m.Status(c.Context)
					if err != nil {
						return err
					}
					for _, s := range st {
						applied := "pending"
						if !s.AppliedAt.IsZero() {
							applied = s.AppliedAt.Format(time.RFC3339)
						}
						fmt.Fprintf(c.App.Writer, "%05d %-40s %s\n", s.Source.Version, s.Source.Path, applied)
					}
					return nil
				}),
			},
		},
	}
}

func withMigrator(fn func(c *cli.Context, m *postgres.Migrator) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}

		m, err := postgres.NewMigrator(c.Context, e.cfg.Database.DSN)
		if err != nil {
			return err
		}
		defer m.Close()

		return fn(c, m)
	}
}
