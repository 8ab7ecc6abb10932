package ctdf

import (
	"errors"
	"fmt"
	"time"
)

type JourneyPlanMode string

const (
	JourneyPlanModeEnumerate JourneyPlanMode = "Enumerate"
	JourneyPlanModeGuided    JourneyPlanMode = "Guided"
)

type JourneyPlanResults struct {
	Itineraries []Itinerary `groups:"basic"`

	OriginStation      string    `groups:"basic"`
	DestinationStation string    `groups:"basic"`
	SearchTime         TimeOfDay `groups:"basic"`

	Mode JourneyPlanMode `groups:"detailed"`
}

// Itinerary is an ordered chain of legs from an overall origin to an overall destination
type Itinerary struct {
	Legs []ScheduledTrain `groups:"basic"`

	StartTime   TimeOfDay     `groups:"basic"`
	ArrivalTime TimeOfDay     `groups:"basic"`
	Duration    time.Duration `groups:"detailed"`
}

func NewItinerary(legs ...ScheduledTrain) Itinerary {
	itinerary := Itinerary{
		Legs: append([]ScheduledTrain(nil), legs...),
	}

	if len(legs) > 0 {
		itinerary.StartTime = legs[0].DepartureTime
		itinerary.ArrivalTime = legs[len(legs)-1].ArrivalTime
		itinerary.Duration = time.Duration(itinerary.TotalMinutes()) * time.Minute
	}

	return itinerary
}

func (i Itinerary) OriginStationRef() string {
	if len(i.Legs) == 0 {
		return ""
	}

	return i.Legs[0].OriginStationRef
}

func (i Itinerary) DestinationStationRef() string {
	if len(i.Legs) == 0 {
		return ""
	}

	return i.Legs[len(i.Legs)-1].DestinationStationRef
}

func (i Itinerary) TotalMinutes() int {
	if len(i.Legs) == 0 {
		return 0
	}

	return i.Legs[len(i.Legs)-1].ArrivalTime.Sub(i.Legs[0].DepartureTime)
}

// WaitMinutes returns the time spent waiting at each change, one entry per connection
func (i Itinerary) WaitMinutes() []int {
	var waits []int

	for index := 1; index < len(i.Legs); index++ {
		waits = append(waits, i.Legs[index].DepartureTime.Sub(i.Legs[index-1].ArrivalTime))
	}

	return waits
}

func (i Itinerary) Validate(bufferMinutes int) error {
	if len(i.Legs) == 0 {
		return errors.New("itinerary has no legs")
	}

	for index := 1; index < len(i.Legs); index++ {
		previous := i.Legs[index-1]
		next := i.Legs[index]

		if previous.DestinationStationRef != next.OriginStationRef {
			return fmt.Errorf("leg %d departs %s but leg %d arrives at %s", index+1, next.OriginStationRef, index, previous.DestinationStationRef)
		}

		if next.DepartureTime.Before(previous.ArrivalTime.Add(bufferMinutes)) {
			return fmt.Errorf("leg %d departs %s, less than %d minutes after arrival at %s", index+1, next.DepartureTime, bufferMinutes, previous.ArrivalTime)
		}
	}

	return nil
}
