package journeyplanner

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/travigo/metroplanner/pkg/ctdf"
	"github.com/travigo/metroplanner/pkg/journeygraph"
)

// EnumerateStrategy lists every direct and single change itinerary departing around the
// search time, regardless of whether it follows the shortest route.
// Itineraries never have more than two legs.
type EnumerateStrategy struct{}

func (s EnumerateStrategy) Plan(planner *Planner, request Request) (*Plan, error) {
	if err := planner.validateRequest(request); err != nil {
		return nil, err
	}

	if _, err := journeygraph.ShortestDistances(planner.Network, request.Origin, request.Destination); err != nil {
		if errors.Is(err, journeygraph.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrNoRouteAvailable, err)
		}
		return nil, err
	}

	windowStart := request.SearchTime.Add(-SearchWindowBefore)
	windowEnd := request.SearchTime.Add(SearchWindowBefore + SearchWindowAfter)
	secondLegDeadline := request.SearchTime.Add(SearchWindowAfter)

	results := &ctdf.JourneyPlanResults{
		Itineraries:        []ctdf.Itinerary{},
		OriginStation:      request.Origin,
		DestinationStation: request.Destination,
		SearchTime:         request.SearchTime,
		Mode:               ModeEnumerate,
	}

	for _, train := range planner.Timetable.DepartingWithin(request.Origin, request.Destination, windowStart, windowEnd) {
		results.Itineraries = append(results.Itineraries, ctdf.NewItinerary(train))
	}

	for _, intermediate := range planner.Network.StationNames() {
		if intermediate == request.Origin || intermediate == request.Destination {
			continue
		}

		secondLegs := planner.Timetable.Between(intermediate, request.Destination)
		if len(secondLegs) == 0 {
			continue
		}

		for _, firstLeg := range planner.Timetable.DepartingWithin(request.Origin, intermediate, windowStart, windowEnd) {
			earliestConnection := firstLeg.ArrivalTime.Add(ConnectionBuffer)

			// Second legs are ordered by departure so the first match is the earliest
			for _, secondLeg := range secondLegs {
				if secondLeg.DepartureTime.After(earliestConnection) && secondLeg.DepartureTime.Before(secondLegDeadline) {
					results.Itineraries = append(results.Itineraries, ctdf.NewItinerary(firstLeg, secondLeg))
					break
				}
			}
		}
	}

	log.Debug().
		Str("origin", request.Origin).
		Str("destination", request.Destination).
		Str("time", request.SearchTime.String()).
		Int("itineraries", len(results.Itineraries)).
		Msg("Enumerated journey plans")

	return &Plan{
		Mode:    ModeEnumerate,
		Results: results,
	}, nil
}
