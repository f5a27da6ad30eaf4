package main

import (
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/heartmarshall/servicehub-backend/internal/app"
	"github.com/heartmarshall/servicehub-backend/internal/domain"
	"github.com/heartmarshall/servicehub-backend/internal/service/catalog"
)

var demoListings = []catalog.CreateListingInput{
	{
		Name:        "Emergency Plumbing",
		Description: "Leaks, blocked drains and burst pipes, day or night.",
		Keywords:    []string{"plumbing", "pipes", "drains", "leaks"},
	},
	{
		Name:        "Home Electrician",
		Description: "Wiring, sockets, lighting and fuse boxes.",
		Keywords:    []string{"electrical", "wiring", "lighting"},
	},
	{
		Name:        "Garden Landscaping",
		Description: "Lawn care, planting and hedge trimming.",
		Keywords:    []string{"gardening", "lawns", "hedges", "planting"},
	},
	{
		Name:        "Math Tutoring",
		Description: "Algebra and calculus lessons for high school students.",
		Keywords:    []string{"tutoring", "mathematics", "lessons"},
	},
	{
		Name:        "Moving Help",
		Description: "Packing, loading and transport for small moves.",
		State:       domain.ServiceStateInactive,
		Keywords:    []string{"moving", "packing", "transport"},
	},
}

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "create demo listings in an empty catalog",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "force", Usage: "seed even when listings already exist"},
		},
		Action: func(c *cli.Context) error {
			return withComponents(c, func(e *env, comps *app.Components) error {
				existing, err := comps.Catalog.Recent(c.Context, 1)
				if err != nil {
					return err
				}
				if len(existing) > 0 && !c.Bool("force") {
					fmt.Fprintln(c.App.Writer, "catalog is not empty, use --force to seed anyway")
					return nil
				}

				created := 0
				for _, in := range demoListings {
					l, err := comps.Catalog.CreateListing(c.Context, in)
					if err != nil {
						return fmt.Errorf("seed %q: %w", in.Name, err)
					}
					created++
					e.logger.Info("listing created",
						slog.Int64("id", l.ID),
						slog.String("name", l.Name),
						slog.Int("keywords", len(l.Keywords)),
					)
				}
				fmt.Fprintf(c.App.Writer, "created %d of %d demo listings\n", created, len(demoListings))
				return nil
			})
		},
	}
}
