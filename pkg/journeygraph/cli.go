package journeygraph

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/travigo/metroplanner/pkg/network"
	"github.com/travigo/metroplanner/pkg/util"
	"github.com/urfave/cli/v2"
)

func loadNetwork(c *cli.Context) (*network.Network, error) {
	definition, err := network.DefinitionFromEnvironment(c.String("network"), c.String("network-id"))
	if err != nil {
		return nil, err
	}

	return definition.Build()
}

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "journeygraph",
		Usage: "Inspect and export the station graph",
		Subcommands: []*cli.Command{
			{
				Name:  "path",
				Usage: "print the shortest path between two stations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "from",
						Usage:    "origin station",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "to",
						Usage:    "destination station",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					n, err := loadNetwork(c)
					if err != nil {
						return err
					}

					path, err := ShortestPath(n, c.String("from"), c.String("to"))
					if err != nil {
						return err
					}

					distance, err := PathDistance(n, path)
					if err != nil {
						return err
					}

					fmt.Fprintf(c.App.Writer, "%s (%d)\n", strings.Join(path, " -> "), distance)

					return nil
				},
			},
			{
				Name:  "export",
				Usage: "write the station graph to Neo4j",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "uri",
						Value: "neo4j://localhost",
						Usage: "Neo4j connection URI",
					},
					&cli.StringFlag{
						Name:  "username",
						Value: "neo4j",
					},
					&cli.StringFlag{
						Name: "password",
					},
					&cli.StringFlag{
						Name:  "database",
						Value: "neo4j",
					},
				},
				Action: func(c *cli.Context) error {
					env := util.GetEnvironmentVariables()

					config := Neo4jConfig{
						URI:      c.String("uri"),
						Username: c.String("username"),
						Password: c.String("password"),
						Database: c.String("database"),
					}
					if config.Password == "" {
						config.Password = env["TRAVIGO_NEO4J_PASSWORD"]
					}

					n, err := loadNetwork(c)
					if err != nil {
						return err
					}

					ctx := context.Background()

					driver, err := Connect(ctx, config)
					if err != nil {
						return err
					}
					defer driver.Close(ctx)

					log.Info().Str("uri", config.URI).Msg("Connected to Neo4j")

					return Export(ctx, driver, config.Database, n)
				},
			},
		},
	}
}
