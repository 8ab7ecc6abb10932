package ctdf

import (
	"fmt"
)

// ScheduledTrain is a single timed run between two directly connected stations
type ScheduledTrain struct {
	OriginStationRef      string `groups:"basic"`
	DestinationStationRef string `groups:"basic"`

	DepartureTime TimeOfDay `groups:"basic"`
	ArrivalTime   TimeOfDay `groups:"basic"`

	Distance int `groups:"detailed"`
}

func (t ScheduledTrain) TravelMinutes() int {
	return t.ArrivalTime.Sub(t.DepartureTime)
}

func (t ScheduledTrain) Identifier() string {
	return fmt.Sprintf("%s:%s:%02d%02d", t.OriginStationRef, t.DestinationStationRef, t.DepartureTime.Hour(), t.DepartureTime.Minute())
}

func (t ScheduledTrain) Runs(origin string, destination string) bool {
	return t.OriginStationRef == origin && t.DestinationStationRef == destination
}

// DepartsWithin reports whether the train departs in [from, to)
func (t ScheduledTrain) DepartsWithin(from TimeOfDay, to TimeOfDay) bool {
	return !t.DepartureTime.Before(from) && t.DepartureTime.Before(to)
}

func CompareScheduledTrains(a ScheduledTrain, b ScheduledTrain) int {
	if a.OriginStationRef != b.OriginStationRef {
		if a.OriginStationRef < b.OriginStationRef {
			return -1
		}
		return 1
	}

	if a.DestinationStationRef != b.DestinationStationRef {
		if a.DestinationStationRef < b.DestinationStationRef {
			return -1
		}
		return 1
	}

	return CompareDepartures(a, b)
}

func CompareDepartures(a ScheduledTrain, b ScheduledTrain) int {
	return a.DepartureTime.Sub(b.DepartureTime)
}
