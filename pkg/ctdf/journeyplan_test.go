package ctdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func train(origin string, destination string, departure string, arrival string) ScheduledTrain {
	departureTime, _ := ParseTimeOfDay(departure)
	arrivalTime, _ := ParseTimeOfDay(arrival)

	return ScheduledTrain{
		OriginStationRef:      origin,
		DestinationStationRef: destination,
		DepartureTime:         departureTime,
		ArrivalTime:           arrivalTime,
	}
}

func TestItineraryTotalMinutesIsAdditive(t *testing.T) {
	legs := []ScheduledTrain{
		train("A", "B", "09:00", "09:20"),
		train("B", "D", "09:30", "09:48"),
		train("D", "F", "09:55", "10:19"),
	}

	itinerary := NewItinerary(legs...)

	travel := 0
	for _, leg := range legs {
		travel += leg.TravelMinutes()
	}
	waiting := 0
	for _, wait := range itinerary.WaitMinutes() {
		waiting += wait
	}

	assert.Equal(t, 79, itinerary.TotalMinutes())
	assert.Equal(t, travel+waiting, itinerary.TotalMinutes())
	assert.Equal(t, []int{10, 7}, itinerary.WaitMinutes())
	assert.Equal(t, 79*time.Minute, itinerary.Duration)
	assert.Equal(t, "A", itinerary.OriginStationRef())
	assert.Equal(t, "F", itinerary.DestinationStationRef())
	assert.Equal(t, NewTimeOfDay(9, 0), itinerary.StartTime)
	assert.Equal(t, NewTimeOfDay(10, 19), itinerary.ArrivalTime)
}

func TestItinerarySingleLeg(t *testing.T) {
	itinerary := NewItinerary(train("A", "B", "08:50", "09:10"))

	assert.Equal(t, 20, itinerary.TotalMinutes())
	assert.Empty(t, itinerary.WaitMinutes())
	assert.NoError(t, itinerary.Validate(5))
}

func TestItineraryValidate(t *testing.T) {
	assert.Error(t, NewItinerary().Validate(5))

	broken := NewItinerary(train("A", "B", "09:00", "09:20"), train("C", "F", "09:30", "09:44"))
	assert.Error(t, broken.Validate(5))

	tight := NewItinerary(train("A", "B", "09:00", "09:20"), train("B", "F", "09:24", "09:38"))
	assert.Error(t, tight.Validate(5))

	exact := NewItinerary(train("A", "B", "09:00", "09:20"), train("B", "F", "09:25", "09:39"))
	assert.NoError(t, exact.Validate(5))
}

func TestScheduledTrainHelpers(t *testing.T) {
	scheduled := train("A", "B", "08:52", "09:12")

	assert.Equal(t, 20, scheduled.TravelMinutes())
	assert.Equal(t, "A:B:0852", scheduled.Identifier())
	assert.True(t, scheduled.Runs("A", "B"))
	assert.False(t, scheduled.Runs("B", "A"))
	assert.True(t, scheduled.DepartsWithin(NewTimeOfDay(8, 50), NewTimeOfDay(10, 10)))
	assert.False(t, scheduled.DepartsWithin(NewTimeOfDay(8, 53), NewTimeOfDay(10, 10)))
	assert.False(t, scheduled.DepartsWithin(NewTimeOfDay(8, 0), NewTimeOfDay(8, 52)))
}
