package journeyplanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/metroplanner/pkg/ctdf"
)

func TestEnumerateReferenceNetwork(t *testing.T) {
	planner := referencePlanner(t)

	plan, err := planner.Plan(ModeEnumerate, Request{Origin: "A", Destination: "F", SearchTime: at(9, 0)})
	require.NoError(t, err)
	require.NotNil(t, plan.Results)
	assert.Nil(t, plan.Session)
	assert.Equal(t, ModeEnumerate, plan.Mode)

	var summaries []itinerarySummary
	for _, itinerary := range plan.Results.Itineraries {
		require.NoError(t, itinerary.Validate(ConnectionBuffer))
		summaries = append(summaries, summarise(itinerary))
	}

	assert.Equal(t, []itinerarySummary{
		{stations: "ABF", departures: []string{"08:50", "09:20"}},
		{stations: "ABF", departures: []string{"09:00", "09:30"}},
		{stations: "ABF", departures: []string{"09:10", "09:40"}},
		{stations: "ABF", departures: []string{"09:20", "09:50"}},
		{stations: "AEF", departures: []string{"08:50", "09:20"}},
		{stations: "AEF", departures: []string{"09:00", "09:30"}},
		{stations: "AEF", departures: []string{"09:10", "09:40"}},
		{stations: "AEF", departures: []string{"09:20", "09:50"}},
	}, summaries)

	first := plan.Results.Itineraries[0]
	assert.Equal(t, 44, first.TotalMinutes())
	assert.Equal(t, []int{10}, first.WaitMinutes())
	assert.Equal(t, "A", plan.Results.OriginStation)
	assert.Equal(t, "F", plan.Results.DestinationStation)
}

func TestEnumerateDirectTrains(t *testing.T) {
	planner := referencePlanner(t)

	plan, err := planner.Plan(ModeEnumerate, Request{Origin: "A", Destination: "B", SearchTime: at(9, 0)})
	require.NoError(t, err)

	var direct []string
	for _, itinerary := range plan.Results.Itineraries {
		if len(itinerary.Legs) == 1 {
			direct = append(direct, itinerary.StartTime.String())
		}
	}

	// [08:50, 10:10)
	assert.Equal(t, []string{"08:50", "09:00", "09:10", "09:20", "09:30", "09:40", "09:50", "10:00"}, direct)
	assert.Equal(t, 1, len(plan.Results.Itineraries[0].Legs))
}

func TestEnumerateDirectWindowBoundary(t *testing.T) {
	connections := []ctdf.Connection{{From: "A", To: "B", Distance: 10}}

	tests := []struct {
		name      string
		departure ctdf.TimeOfDay
		included  bool
	}{
		{name: "08:52 within ten minutes before", departure: at(8, 52), included: true},
		{name: "08:50 on the lower bound", departure: at(8, 50), included: true},
		{name: "08:49 too early", departure: at(8, 49), included: false},
		{name: "10:09 before upper bound", departure: at(10, 9), included: true},
		{name: "10:10 on the upper bound", departure: at(10, 10), included: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			planner := handPlanner(t, []string{"A", "B"}, connections, train("A", "B", tt.departure, 20))

			plan, err := planner.Plan(ModeEnumerate, Request{Origin: "A", Destination: "B", SearchTime: at(9, 0)})
			require.NoError(t, err)

			if tt.included {
				require.Len(t, plan.Results.Itineraries, 1)
				assert.Equal(t, tt.departure, plan.Results.Itineraries[0].StartTime)
			} else {
				assert.Empty(t, plan.Results.Itineraries)
			}
		})
	}
}

func TestEnumerateSecondLegRules(t *testing.T) {
	stations := []string{"A", "B", "C"}
	connections := []ctdf.Connection{
		{From: "A", To: "B", Distance: 10},
		{From: "B", To: "C", Distance: 10},
	}

	tests := []struct {
		name       string
		secondLegs []ctdf.TimeOfDay
		expected   []string
	}{
		{name: "buffer is exclusive", secondLegs: []ctdf.TimeOfDay{at(9, 25)}, expected: nil},
		{name: "just after buffer", secondLegs: []ctdf.TimeOfDay{at(9, 26)}, expected: []string{"09:00", "09:26"}},
		{name: "earliest qualifying second leg only", secondLegs: []ctdf.TimeOfDay{at(9, 40), at(9, 30), at(9, 27)}, expected: []string{"09:00", "09:27"}},
		{name: "second leg bounded by search time plus an hour", secondLegs: []ctdf.TimeOfDay{at(10, 0)}, expected: nil},
		{name: "second leg just inside the hour", secondLegs: []ctdf.TimeOfDay{at(9, 59)}, expected: []string{"09:00", "09:59"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trains := []ctdf.ScheduledTrain{train("A", "B", at(9, 0), 20)}
			for _, departure := range tt.secondLegs {
				trains = append(trains, train("B", "C", departure, 20))
			}

			planner := handPlanner(t, stations, connections, trains...)

			plan, err := planner.Plan(ModeEnumerate, Request{Origin: "A", Destination: "C", SearchTime: at(9, 0)})
			require.NoError(t, err)

			if tt.expected == nil {
				assert.Empty(t, plan.Results.Itineraries)
				return
			}

			require.Len(t, plan.Results.Itineraries, 1)
			assert.Equal(t, tt.expected, summarise(plan.Results.Itineraries[0]).departures)
		})
	}
}

func TestEnumerateNoTrainsIsEmptyNotError(t *testing.T) {
	planner := referencePlanner(t)

	plan, err := planner.Plan(ModeEnumerate, Request{Origin: "A", Destination: "F", SearchTime: at(22, 0)})
	require.NoError(t, err)
	assert.NotNil(t, plan.Results.Itineraries)
	assert.Empty(t, plan.Results.Itineraries)
}
