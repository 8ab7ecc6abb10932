package networklookup

import (
	"reflect"

	"github.com/travigo/metroplanner/pkg/ctdf"
	"github.com/travigo/metroplanner/pkg/dataaggregator/query"
	"github.com/travigo/metroplanner/pkg/dataaggregator/source"
	"github.com/travigo/metroplanner/pkg/network"
)

type Source struct {
	Network *network.Network
}

func (s Source) GetName() string {
	return "Network Lookup"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf(ctdf.Station{}),
		reflect.TypeOf([]ctdf.Station{}),
	}
}

func (s Source) Lookup(q any) (interface{}, error) {
	switch q := q.(type) {
	case query.Stop:
		return s.StationQuery(q)
	case query.Stations:
		return s.Network.AllStations(), nil
	default:
		return nil, source.UnsupportedSourceError
	}
}

func (s Source) StationQuery(q query.Stop) (*ctdf.Station, error) {
	station, err := s.Network.Station(q.Identifier)
	if err != nil {
		return nil, err
	}

	return &station, nil
}
