package timetable

import (
	"io"

	"github.com/gocarina/gocsv"
	"github.com/travigo/metroplanner/pkg/ctdf"
)

type csvRecord struct {
	Identifier    string `csv:"identifier"`
	Origin        string `csv:"origin"`
	Destination   string `csv:"destination"`
	Departure     string `csv:"departure"`
	Arrival       string `csv:"arrival"`
	Distance      int    `csv:"distance"`
	TravelMinutes int    `csv:"travel_minutes"`
}

func WriteCSV(w io.Writer, trains []ctdf.ScheduledTrain) error {
	records := make([]*csvRecord, 0, len(trains))

	for _, train := range trains {
		records = append(records, &csvRecord{
			Identifier:    train.Identifier(),
			Origin:        train.OriginStationRef,
			Destination:   train.DestinationStationRef,
			Departure:     train.DepartureTime.String(),
			Arrival:       train.ArrivalTime.String(),
			Distance:      train.Distance,
			TravelMinutes: train.TravelMinutes(),
		})
	}

	return gocsv.Marshal(&records, w)
}

func (t *Timetable) WriteCSV(w io.Writer) error {
	return WriteCSV(w, t.trains)
}
