package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/heartmarshall/servicehub-backend/internal/app"
	"github.com/heartmarshall/servicehub-backend/internal/domain"
)

func promoteCommand() *cli.Command {
	return &cli.Command{
		Name:  "promote",
		Usage: "set the role of an existing user",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Usage: "email of the user", Required: true},
			&cli.StringFlag{Name: "role", Usage: "STANDARD_USER, PROFESSIONAL or ADMIN", Value: string(domain.RoleAdmin)},
		},
		Action: func(c *cli.Context) error {
			role := domain.Role(strings.ToUpper(c.String("role")))
			if !role.IsValid() {
				return fmt.Errorf("unknown role %q", c.String("role"))
			}

			return withComponents(c, func(_ *env, comps *app.Components) error {
				u, err := comps.Users.UpdateRole(c.Context, c.String("email"), role)
				if err != nil {
					return fmt.Errorf("promote %s: %w", c.String("email"), err)
				}
				fmt.Fprintf(c.App.Writer, "user %d (%s) is now %s\n", u.ID, u.Email, u.Role)
				return nil
			})
		},
	}
}

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "issue an access token for an existing user (development only)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Usage: "email of the user", Required: true},
		},
		Action: func(c *cli.Context) error {
			return withComponents(c, func(_ *env, comps *app.Components) error {
				u, err := comps.Users.GetByEmail(c.Context, domain.NormalizeEmail(c.String("email")))
				if err != nil {
					return fmt.Errorf("find %s: %w", c.String("email"), err)
				}

				token, err := comps.JWT.GenerateAccessToken(u.ID, u.Email, string(u.Role))
				if err != nil {
					return err
				}
				fmt.Fprintln(c.App.Writer, token)
				return nil
			})
		},
	}
}
