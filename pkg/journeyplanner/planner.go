package journeyplanner

import (
	"errors"
	"fmt"

	"github.com/travigo/metroplanner/pkg/ctdf"
	"github.com/travigo/metroplanner/pkg/network"
	"github.com/travigo/metroplanner/pkg/timetable"
)

var (
	ErrNoRouteAvailable   = errors.New("no route available")
	ErrNoTrainsForSegment = errors.New("no trains for segment")
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrSessionComplete    = errors.New("session complete")
	ErrUnsupportedMode    = errors.New("unsupported planning mode")
)

const (
	// Minutes before the search time a first leg may depart
	SearchWindowBefore = 10
	// Minutes after the search time the search window extends to
	SearchWindowAfter = 60
	// Minimum minutes between arriving on one leg and departing on the next
	ConnectionBuffer = 5
)

type Mode = ctdf.JourneyPlanMode

const (
	ModeEnumerate = ctdf.JourneyPlanModeEnumerate
	ModeGuided    = ctdf.JourneyPlanModeGuided
)

type Request struct {
	Origin      string
	Destination string
	SearchTime  ctdf.TimeOfDay
}

// Plan is the outcome of a planning request. Enumerate searches fill Results,
// guided searches fill Session with the candidates for the first segment.
type Plan struct {
	Mode Mode

	Results *ctdf.JourneyPlanResults
	Session *GuidedSession
}

type Strategy interface {
	Plan(planner *Planner, request Request) (*Plan, error)
}

// Planner holds the read only network and timetable and can be shared between requests
type Planner struct {
	Network   *network.Network
	Timetable *timetable.Timetable

	strategies map[Mode]Strategy
}

func NewPlanner(n *network.Network, t *timetable.Timetable) *Planner {
	return &Planner{
		Network:   n,
		Timetable: t,
		strategies: map[Mode]Strategy{
			ModeEnumerate: EnumerateStrategy{},
			ModeGuided:    GuidedStrategy{},
		},
	}
}

// NewFromDefinition builds the network and generates its timetable
func NewFromDefinition(definition network.Definition) (*Planner, error) {
	n, generated, err := timetable.FromDefinition(definition)
	if err != nil {
		return nil, err
	}

	return NewPlanner(n, generated), nil
}

func (p *Planner) Plan(mode Mode, request Request) (*Plan, error) {
	strategy, exists := p.strategies[mode]
	if !exists {
		return nil, fmt.Errorf("%w %s", ErrUnsupportedMode, mode)
	}

	return strategy.Plan(p, request)
}

func (p *Planner) validateRequest(request Request) error {
	for _, station := range []string{request.Origin, request.Destination} {
		if !p.Network.HasStation(station) {
			return fmt.Errorf("%w %s", network.ErrUnknownStation, station)
		}
	}

	return nil
}
