package api

import (
	"github.com/travigo/metroplanner/pkg/journeyplanner"
	"github.com/travigo/metroplanner/pkg/redis_client"
	"github.com/travigo/metroplanner/pkg/sessions"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the journey planner web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
					&cli.DurationFlag{
						Name:  "session-expiry",
						Value: sessions.DefaultExpiration,
						Usage: "how long planning sessions are kept",
					},
				},
				Action: func(c *cli.Context) error {
					if err := redis_client.Connect(); err != nil {
						return err
					}

					planner, err := journeyplanner.LoadFromCLI(c)
					if err != nil {
						return err
					}

					store := sessions.NewStore(redis_client.Client, c.Duration("session-expiry"))

					return SetupServer(c.String("listen"), planner, store)
				},
			},
		},
	}
}
