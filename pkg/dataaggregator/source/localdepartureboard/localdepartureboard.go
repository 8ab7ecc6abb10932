package localdepartureboard

import (
	"fmt"
	"reflect"

	"github.com/travigo/metroplanner/pkg/ctdf"
	"github.com/travigo/metroplanner/pkg/dataaggregator/query"
	"github.com/travigo/metroplanner/pkg/dataaggregator/source"
	"github.com/travigo/metroplanner/pkg/network"
	"github.com/travigo/metroplanner/pkg/timetable"
)

type Source struct {
	Network   *network.Network
	Timetable *timetable.Timetable
}

func (s Source) GetName() string {
	return "Local Departure Board Generator"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf([]*ctdf.DepartureBoard{}),
	}
}

func (s Source) Lookup(q any) (interface{}, error) {
	switch q := q.(type) {
	case query.DepartureBoard:
		return s.DepartureBoardQuery(q)
	default:
		return nil, source.UnsupportedSourceError
	}
}

func (s Source) DepartureBoardQuery(q query.DepartureBoard) ([]*ctdf.DepartureBoard, error) {
	if !s.Network.HasStation(q.Station) {
		return nil, fmt.Errorf("%w %s", network.ErrUnknownStation, q.Station)
	}

	return ctdf.GenerateDepartureBoard(s.Timetable.Departures(q.Station, q.StartTime, q.Count)), nil
}
