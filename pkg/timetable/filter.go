package timetable

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/travigo/metroplanner/pkg/ctdf"
)

// TrainEnvironment is what a filter expression can see of a train.
// Times are minutes after midnight.
type TrainEnvironment struct {
	Origin        string
	Destination   string
	Departure     int
	Arrival       int
	Distance      int
	TravelMinutes int
}

func newTrainEnvironment(train ctdf.ScheduledTrain) TrainEnvironment {
	return TrainEnvironment{
		Origin:        train.OriginStationRef,
		Destination:   train.DestinationStationRef,
		Departure:     train.DepartureTime.Minutes(),
		Arrival:       train.ArrivalTime.Minutes(),
		Distance:      train.Distance,
		TravelMinutes: train.TravelMinutes(),
	}
}

// Filter returns the trains matching a boolean expression such as
// `Origin == "A" && Departure >= 540`
func (t *Timetable) Filter(expression string) ([]ctdf.ScheduledTrain, error) {
	program, err := expr.Compile(expression, expr.Env(TrainEnvironment{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling filter %q: %w", expression, err)
	}

	var matched []ctdf.ScheduledTrain

	for _, train := range t.trains {
		output, err := expr.Run(program, newTrainEnvironment(train))
		if err != nil {
			return nil, fmt.Errorf("evaluating filter %q for %s: %w", expression, train.Identifier(), err)
		}

		if output.(bool) {
			matched = append(matched, train)
		}
	}

	return matched, nil
}
