package timetable

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/travigo/metroplanner/pkg/ctdf"
	"github.com/travigo/metroplanner/pkg/network"
	"golang.org/x/exp/slices"
)

// Timetable is the full set of scheduled trains for a network. It is never
// modified after construction so it can be shared freely.
type Timetable struct {
	trains []ctdf.ScheduledTrain

	byConnection map[connectionKey][]ctdf.ScheduledTrain
	byOrigin     map[string][]ctdf.ScheduledTrain
}

type connectionKey struct {
	origin      string
	destination string
}

// New builds a timetable from explicit trains, sorted by origin, destination and departure
func New(trains []ctdf.ScheduledTrain) *Timetable {
	sorted := append([]ctdf.ScheduledTrain(nil), trains...)
	slices.SortStableFunc(sorted, ctdf.CompareScheduledTrains)

	timetable := &Timetable{
		trains:       sorted,
		byConnection: map[connectionKey][]ctdf.ScheduledTrain{},
		byOrigin:     map[string][]ctdf.ScheduledTrain{},
	}

	for _, train := range sorted {
		key := connectionKey{origin: train.OriginStationRef, destination: train.DestinationStationRef}
		timetable.byConnection[key] = append(timetable.byConnection[key], train)
		timetable.byOrigin[train.OriginStationRef] = append(timetable.byOrigin[train.OriginStationRef], train)
	}

	for origin := range timetable.byOrigin {
		slices.SortStableFunc(timetable.byOrigin[origin], ctdf.CompareDepartures)
	}

	return timetable
}

// Generate schedules every directed connection of the network at a fixed headway
func Generate(n *network.Network, settings Settings) (*Timetable, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	startTime := time.Now()

	p := pool.NewWithResults[[]ctdf.ScheduledTrain]()
	p.WithMaxGoroutines(8)

	for _, connection := range n.Connections() {
		connection := connection

		p.Go(func() []ctdf.ScheduledTrain {
			return scheduleConnection(connection.From, connection.To, connection.Distance, settings)
		})
		p.Go(func() []ctdf.ScheduledTrain {
			return scheduleConnection(connection.To, connection.From, connection.Distance, settings)
		})
	}

	var trains []ctdf.ScheduledTrain
	for _, connectionTrains := range p.Wait() {
		trains = append(trains, connectionTrains...)
	}

	timetable := New(trains)

	log.Debug().
		Int("trains", timetable.Len()).
		Str("Length", time.Since(startTime).String()).
		Msg("Timetable generation")

	return timetable, nil
}

func scheduleConnection(origin string, destination string, distance int, settings Settings) []ctdf.ScheduledTrain {
	var trains []ctdf.ScheduledTrain

	travelMinutes := TravelMinutes(distance, settings.AverageSpeedKmh)

	for currentTime := settings.WindowStart; currentTime.Before(settings.WindowEnd); currentTime = currentTime.Add(settings.HeadwayMinutes) {
		trains = append(trains, ctdf.ScheduledTrain{
			OriginStationRef:      origin,
			DestinationStationRef: destination,
			DepartureTime:         currentTime,
			ArrivalTime:           currentTime.Add(travelMinutes),
			Distance:              distance,
		})
	}

	return trains
}

func (t *Timetable) Len() int {
	return len(t.trains)
}

// Trains returns a copy of every train ordered by origin, destination and departure
func (t *Timetable) Trains() []ctdf.ScheduledTrain {
	return append([]ctdf.ScheduledTrain(nil), t.trains...)
}

// Between returns the trains running directly from origin to destination ordered by departure
func (t *Timetable) Between(origin string, destination string) []ctdf.ScheduledTrain {
	return append([]ctdf.ScheduledTrain(nil), t.byConnection[connectionKey{origin: origin, destination: destination}]...)
}

// DepartingWithin returns trains from origin to destination departing in [from, to), ordered by departure
func (t *Timetable) DepartingWithin(origin string, destination string, from ctdf.TimeOfDay, to ctdf.TimeOfDay) []ctdf.ScheduledTrain {
	var trains []ctdf.ScheduledTrain

	for _, train := range t.byConnection[connectionKey{origin: origin, destination: destination}] {
		if train.DepartsWithin(from, to) {
			trains = append(trains, train)
		}
	}

	return trains
}

// Departures builds a departure board for a station, the next count trains leaving at or after the given time
func (t *Timetable) Departures(station string, after ctdf.TimeOfDay, count int) []ctdf.ScheduledTrain {
	var departures []ctdf.ScheduledTrain

	for _, train := range t.byOrigin[station] {
		if count > 0 && len(departures) >= count {
			break
		}

		if !train.DepartureTime.Before(after) {
			departures = append(departures, train)
		}
	}

	return departures
}
