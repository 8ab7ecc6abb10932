package global

import (
	"github.com/travigo/metroplanner/pkg/dataaggregator"
	"github.com/travigo/metroplanner/pkg/dataaggregator/source/journeyplanner"
	"github.com/travigo/metroplanner/pkg/dataaggregator/source/localdepartureboard"
	"github.com/travigo/metroplanner/pkg/dataaggregator/source/networklookup"
	planner "github.com/travigo/metroplanner/pkg/journeyplanner"
)

// NewAggregator registers every data source backed by the planner's network and timetable
func NewAggregator(p *planner.Planner) dataaggregator.Aggregator {
	aggregator := dataaggregator.Aggregator{}

	aggregator.RegisterSource(networklookup.Source{
		Network: p.Network,
	})
	aggregator.RegisterSource(localdepartureboard.Source{
		Network:   p.Network,
		Timetable: p.Timetable,
	})
	aggregator.RegisterSource(journeyplanner.Source{
		Planner: p,
	})

	return aggregator
}

func Setup(p *planner.Planner) {
	dataaggregator.GlobalAggregator = NewAggregator(p)
}
