package journeyplanner

import (
	"reflect"

	"github.com/travigo/metroplanner/pkg/dataaggregator/query"
	"github.com/travigo/metroplanner/pkg/dataaggregator/source"
	"github.com/travigo/metroplanner/pkg/journeyplanner"
)

type Source struct {
	Planner *journeyplanner.Planner
}

func (s Source) GetName() string {
	return "Journey Planner"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf(journeyplanner.Plan{}),
	}
}

func (s Source) Lookup(q any) (interface{}, error) {
	switch q := q.(type) {
	case query.JourneyPlan:
		return s.JourneyPlanQuery(q)
	default:
		return nil, source.UnsupportedSourceError
	}
}

func (s Source) JourneyPlanQuery(q query.JourneyPlan) (*journeyplanner.Plan, error) {
	mode := q.Mode
	if mode == "" {
		mode = journeyplanner.ModeEnumerate
	}

	return s.Planner.Plan(mode, journeyplanner.Request{
		Origin:      q.Origin,
		Destination: q.Destination,
		SearchTime:  q.SearchTime,
	})
}
