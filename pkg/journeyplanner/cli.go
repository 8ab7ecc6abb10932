package journeyplanner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kr/pretty"
	"github.com/travigo/metroplanner/pkg/ctdf"
	"github.com/travigo/metroplanner/pkg/network"
	"github.com/urfave/cli/v2"
)

// LoadFromCLI builds a planner for the network selected by the global flags
func LoadFromCLI(c *cli.Context) (*Planner, error) {
	definition, err := network.DefinitionFromEnvironment(c.String("network"), c.String("network-id"))
	if err != nil {
		return nil, err
	}

	return NewFromDefinition(definition)
}

func requestFromCLI(c *cli.Context) (Request, error) {
	searchTime, err := ctdf.ParseTimeOfDay(c.String("time"))
	if err != nil {
		return Request{}, err
	}

	return Request{
		Origin:      c.String("from"),
		Destination: c.String("to"),
		SearchTime:  searchTime,
	}, nil
}

func writeTrain(w io.Writer, prefix string, train ctdf.ScheduledTrain) {
	fmt.Fprintf(w, "%s%s %s -> %s %s (%d min)\n", prefix, train.DepartureTime, train.OriginStationRef, train.DestinationStationRef, train.ArrivalTime, train.TravelMinutes())
}

func writeItinerary(w io.Writer, number int, itinerary ctdf.Itinerary) {
	fmt.Fprintf(w, "%2d. %s -> %s, %d min", number, itinerary.StartTime, itinerary.ArrivalTime, itinerary.TotalMinutes())
	if waits := itinerary.WaitMinutes(); len(waits) > 0 {
		fmt.Fprintf(w, ", waiting %v min", waits)
	}
	fmt.Fprintln(w)

	for _, leg := range itinerary.Legs {
		writeTrain(w, "      ", leg)
	}
}

func writeConfirmation(w io.Writer, confirmation *ctdf.BookingConfirmation) {
	fmt.Fprintf(w, "Booking reference %s\n", confirmation.BookingReference)
	fmt.Fprintf(w, "Total journey time %d min\n", confirmation.TotalMinutes)
	fmt.Fprintf(w, "Please arrive at %s at least %d minutes before %s\n",
		confirmation.Itinerary.OriginStationRef(), confirmation.ArriveBeforeMinutes, confirmation.Itinerary.StartTime)
}

func readChoice(scanner *bufio.Scanner) (int, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	choice, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidSelection, scanner.Text())
	}

	// Choices are numbered from 1 on the command line
	return choice - 1, nil
}

var searchFlags = []cli.Flag{
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
	&cli.StringFlag{
		Name:  "time",
		Value: "09:00",
		Usage: "search time as HH:MM",
	},
	&cli.BoolFlag{
		Name:  "dump",
		Usage: "print the raw planner output",
	},
}

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "planner",
		Usage: "Plan journeys across the network",
		Subcommands: []*cli.Command{
			{
				Name:  "search",
				Usage: "list every itinerary departing around the search time",
				Flags: append([]cli.Flag{
					&cli.IntFlag{
						Name:  "confirm",
						Usage: "confirm the itinerary with this number",
					},
				}, searchFlags...),
				Action: func(c *cli.Context) error {
					planner, err := LoadFromCLI(c)
					if err != nil {
						return err
					}

					request, err := requestFromCLI(c)
					if err != nil {
						return err
					}

					plan, err := planner.Plan(ModeEnumerate, request)
					if err != nil {
						return err
					}

					if c.Bool("dump") {
						pretty.Fprintf(c.App.Writer, "%# v\n", plan.Results)
					}

					if len(plan.Results.Itineraries) == 0 {
						fmt.Fprintf(c.App.Writer, "No trains from %s to %s around %s\n", request.Origin, request.Destination, request.SearchTime)
						return nil
					}

					for index, itinerary := range plan.Results.Itineraries {
						writeItinerary(c.App.Writer, index+1, itinerary)
					}

					if c.IsSet("confirm") {
						confirmation, err := Confirm(plan.Results, c.Int("confirm")-1)
						if err != nil {
							return err
						}

						writeConfirmation(c.App.Writer, confirmation)
					}

					return nil
				},
			},
			{
				Name:  "guided",
				Usage: "choose a train for each segment of the shortest route, choices are read from stdin",
				Flags: searchFlags,
				Action: func(c *cli.Context) error {
					planner, err := LoadFromCLI(c)
					if err != nil {
						return err
					}

					request, err := requestFromCLI(c)
					if err != nil {
						return err
					}

					session, err := planner.StartGuided(request)
					if err != nil {
						return err
					}

					fmt.Fprintf(c.App.Writer, "Route %s\n", strings.Join(session.Path, " -> "))

					scanner := bufio.NewScanner(c.App.Reader)

					for {
						var candidates []ctdf.ScheduledTrain

						session, candidates, err = planner.NextSegmentCandidates(session)
						if errors.Is(err, ErrSessionComplete) {
							break
						}
						if err != nil {
							return err
						}

						from, to, _ := session.CurrentSegment()
						fmt.Fprintf(c.App.Writer, "Trains from %s to %s:\n", from, to)
						for index, train := range candidates {
							writeTrain(c.App.Writer, fmt.Sprintf("%2d. ", index+1), train)
						}
						fmt.Fprint(c.App.Writer, "Choose a train: ")

						for {
							choice, err := readChoice(scanner)
							if err != nil && !errors.Is(err, ErrInvalidSelection) {
								return err
							}

							if err == nil {
								session, err = planner.SelectTrain(session, choice)
							}
							if err == nil {
								break
							}

							fmt.Fprintf(c.App.Writer, "%s, choose again: ", err)
						}
					}

					if c.Bool("dump") {
						pretty.Fprintf(c.App.Writer, "%# v\n", session)
					}

					if len(session.Legs) == 0 {
						fmt.Fprintf(c.App.Writer, "Already at %s\n", request.Destination)
						return nil
					}

					itinerary := session.Itinerary()
					writeItinerary(c.App.Writer, 1, itinerary)

					confirmation, err := ConfirmItinerary(itinerary)
					if err != nil {
						return err
					}

					writeConfirmation(c.App.Writer, confirmation)

					return nil
				},
			},
		},
	}
}
