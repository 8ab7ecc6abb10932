package timetable

import (
	"fmt"

	"github.com/kr/pretty"
	"github.com/travigo/metroplanner/pkg/ctdf"
	"github.com/travigo/metroplanner/pkg/network"
	"github.com/urfave/cli/v2"
)

// FromDefinition builds the network of a definition and generates its timetable
func FromDefinition(definition network.Definition) (*network.Network, *Timetable, error) {
	n, err := definition.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("building network %s: %w", definition.Identifier, err)
	}

	settings, err := SettingsFromDefinition(definition.Timetable)
	if err != nil {
		return nil, nil, err
	}

	t, err := Generate(n, settings)
	if err != nil {
		return nil, nil, err
	}

	return n, t, nil
}

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "timetable",
		Usage: "Generate and inspect the network timetable",
		Subcommands: []*cli.Command{
			{
				Name:  "show",
				Usage: "print the scheduled trains",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "from",
						Usage: "only trains departing this station",
					},
					&cli.StringFlag{
						Name:  "to",
						Usage: "only trains arriving at this station",
					},
					&cli.StringFlag{
						Name:  "filter",
						Usage: "expression trains must match, eg. 'Departure >= 540 && Distance > 10'",
					},
					&cli.BoolFlag{
						Name:  "csv",
						Usage: "write the trains as CSV",
					},
					&cli.BoolFlag{
						Name:  "dump",
						Usage: "dump the raw train structs",
					},
				},
				Action: func(c *cli.Context) error {
					definition, err := network.DefinitionFromEnvironment(c.String("network"), c.String("network-id"))
					if err != nil {
						return err
					}

					_, t, err := FromDefinition(definition)
					if err != nil {
						return err
					}

					trains := t.Trains()
					if c.String("filter") != "" {
						trains, err = t.Filter(c.String("filter"))
						if err != nil {
							return err
						}
					}

					trains = onConnection(trains, c.String("from"), c.String("to"))

					switch {
					case c.Bool("csv"):
						return WriteCSV(c.App.Writer, trains)
					case c.Bool("dump"):
						pretty.Fprintf(c.App.Writer, "%# v\n", trains)
					default:
						for _, train := range trains {
							fmt.Fprintf(c.App.Writer, "%-10s %s %s -> %s %s %3d km %3d min\n",
								train.Identifier(), train.DepartureTime, train.OriginStationRef,
								train.DestinationStationRef, train.ArrivalTime, train.Distance, train.TravelMinutes())
						}
						fmt.Fprintf(c.App.Writer, "%d trains\n", len(trains))
					}

					return nil
				},
			},
		},
	}
}

// onConnection keeps trains leaving from and arriving at the given stations. Empty means any.
func onConnection(trains []ctdf.ScheduledTrain, from string, to string) []ctdf.ScheduledTrain {
	var selected []ctdf.ScheduledTrain

	for _, train := range trains {
		if from != "" && train.OriginStationRef != from {
			continue
		}
		if to != "" && train.DestinationStationRef != to {
			continue
		}

		selected = append(selected, train)
	}

	return selected
}
