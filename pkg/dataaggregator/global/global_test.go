package global

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/metroplanner/pkg/ctdf"
	"github.com/travigo/metroplanner/pkg/dataaggregator"
	"github.com/travigo/metroplanner/pkg/dataaggregator/query"
	"github.com/travigo/metroplanner/pkg/dataaggregator/source"
	"github.com/travigo/metroplanner/pkg/journeyplanner"
	"github.com/travigo/metroplanner/pkg/network"
)

func setupPlanner(t *testing.T) {
	t.Helper()

	planner, err := journeyplanner.NewFromDefinition(network.DefaultDefinition())
	require.NoError(t, err)

	Setup(planner)
}

func TestStationLookup(t *testing.T) {
	setupPlanner(t)

	station, err := dataaggregator.Lookup[*ctdf.Station](query.Stop{Identifier: "D"})
	require.NoError(t, err)
	assert.Equal(t, "D", station.Name)
	assert.Equal(t, map[string]int{"B": 9, "C": 9, "E": 5, "F": 12}, station.Connections)

	_, err = dataaggregator.Lookup[*ctdf.Station](query.Stop{Identifier: "Z"})
	assert.ErrorIs(t, err, network.ErrUnknownStation)

	stations, err := dataaggregator.Lookup[[]ctdf.Station](query.Stations{})
	require.NoError(t, err)
	require.Len(t, stations, 6)
	assert.Equal(t, "A", stations[0].Name)
}

func TestDepartureBoardLookup(t *testing.T) {
	setupPlanner(t)

	departureBoard, err := dataaggregator.Lookup[[]*ctdf.DepartureBoard](query.DepartureBoard{
		Station:   "E",
		Count:     5,
		StartTime: ctdf.NewTimeOfDay(12, 1),
	})
	require.NoError(t, err)
	require.Len(t, departureBoard, 5)

	assert.Equal(t, ctdf.NewTimeOfDay(12, 10), departureBoard[0].Time)
	assert.Equal(t, "A", departureBoard[0].DestinationDisplay)
	assert.Equal(t, ctdf.DepartureBoardRecordTypeScheduled, departureBoard[0].Type)
	assert.Equal(t, "D", departureBoard[1].DestinationDisplay)
	assert.Equal(t, "F", departureBoard[2].DestinationDisplay)
	assert.Equal(t, ctdf.NewTimeOfDay(12, 20), departureBoard[3].Time)

	_, err = dataaggregator.Lookup[[]*ctdf.DepartureBoard](query.DepartureBoard{Station: "Z"})
	assert.ErrorIs(t, err, network.ErrUnknownStation)
}

func TestJourneyPlanLookup(t *testing.T) {
	setupPlanner(t)

	plan, err := dataaggregator.Lookup[*journeyplanner.Plan](query.JourneyPlan{
		Origin:      "A",
		Destination: "F",
		SearchTime:  ctdf.NewTimeOfDay(9, 0),
	})
	require.NoError(t, err)
	assert.Equal(t, journeyplanner.ModeEnumerate, plan.Mode)
	assert.Len(t, plan.Results.Itineraries, 8)

	plan, err = dataaggregator.Lookup[*journeyplanner.Plan](query.JourneyPlan{
		Mode:        journeyplanner.ModeGuided,
		Origin:      "A",
		Destination: "F",
		SearchTime:  ctdf.NewTimeOfDay(9, 0),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "F"}, plan.Session.Path)
}

func TestUnsupportedLookups(t *testing.T) {
	setupPlanner(t)

	_, err := dataaggregator.Lookup[*ctdf.Station](query.DepartureBoard{Station: "A"})
	assert.ErrorIs(t, err, source.UnsupportedSourceError)

	_, err = dataaggregator.Lookup[*ctdf.ScheduledTrain](query.Stop{Identifier: "A"})
	assert.ErrorIs(t, err, dataaggregator.ErrNoMatchingSource)
}
