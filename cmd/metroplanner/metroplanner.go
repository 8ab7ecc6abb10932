package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/metroplanner/pkg/api"
	"github.com/travigo/metroplanner/pkg/journeygraph"
	"github.com/travigo/metroplanner/pkg/journeyplanner"
	"github.com/travigo/metroplanner/pkg/timetable"
	"github.com/urfave/cli/v2"
)

func main() {
	// A missing .env file is fine, the environment may already be set
	_ = godotenv.Load()

	if os.Getenv("TRAVIGO_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("TRAVIGO_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "metroplanner",
		Description: "Metro journey planner - timetable generation, route search and the planner web API",

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "network",
				Usage: "network definition file (defaults to TRAVIGO_NETWORK_FILE or the reference network)",
			},
			&cli.StringFlag{
				Name:  "network-id",
				Usage: "identifier of the network to load from the definition file or directory",
			},
		},

		Commands: []*cli.Command{
			api.RegisterCLI(),
			journeyplanner.RegisterCLI(),
			journeygraph.RegisterCLI(),
			timetable.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
