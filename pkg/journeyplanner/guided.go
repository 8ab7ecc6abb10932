package journeyplanner

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/travigo/metroplanner/pkg/ctdf"
	"github.com/travigo/metroplanner/pkg/journeygraph"
	"github.com/travigo/metroplanner/pkg/util"
)

// GuidedSession is the state of a step by step search along the shortest path.
// Planner operations take a session and return an updated copy, the input is never modified.
type GuidedSession struct {
	Origin      string         `groups:"basic"`
	Destination string         `groups:"basic"`
	SearchTime  ctdf.TimeOfDay `groups:"basic"`

	Path    []string `groups:"basic"`
	Segment int      `groups:"basic"`

	Legs       []ctdf.ScheduledTrain `groups:"basic"`
	Candidates []ctdf.ScheduledTrain `groups:"basic"`
}

func (s GuidedSession) Complete() bool {
	return s.Segment >= len(s.Path)-1
}

// CurrentSegment returns the stations at either end of the segment awaiting a selection
func (s GuidedSession) CurrentSegment() (string, string, bool) {
	if s.Complete() {
		return "", "", false
	}

	return s.Path[s.Segment], s.Path[s.Segment+1], true
}

func (s GuidedSession) Itinerary() ctdf.Itinerary {
	return ctdf.NewItinerary(s.Legs...)
}

func (s GuidedSession) clone() (GuidedSession, error) {
	var clone GuidedSession

	if err := copier.CopyWithOption(&clone, &s, copier.Option{DeepCopy: true}); err != nil {
		return GuidedSession{}, err
	}

	return clone, nil
}

// GuidedStrategy starts a guided session and returns the candidates for its first segment
type GuidedStrategy struct{}

func (g GuidedStrategy) Plan(planner *Planner, request Request) (*Plan, error) {
	session, err := planner.StartGuided(request)
	if err != nil {
		return nil, err
	}

	session, _, err = planner.NextSegmentCandidates(session)
	if err != nil && !errors.Is(err, ErrSessionComplete) {
		return nil, err
	}

	return &Plan{
		Mode:    ModeGuided,
		Session: &session,
	}, nil
}

func (p *Planner) StartGuided(request Request) (GuidedSession, error) {
	if err := p.validateRequest(request); err != nil {
		return GuidedSession{}, err
	}

	path, err := journeygraph.ShortestPath(p.Network, request.Origin, request.Destination)
	if err != nil {
		if errors.Is(err, journeygraph.ErrNotFound) {
			return GuidedSession{}, fmt.Errorf("%w: %w", ErrNoRouteAvailable, err)
		}
		return GuidedSession{}, err
	}

	log.Debug().
		Strs("path", path).
		Str("time", request.SearchTime.String()).
		Msg("Started guided journey plan")

	return GuidedSession{
		Origin:      request.Origin,
		Destination: request.Destination,
		SearchTime:  request.SearchTime,
		Path:        path,
	}, nil
}

// NextSegmentCandidates finds the trains that can cover the current segment of the path.
// The returned session holds them as the pending candidates.
func (p *Planner) NextSegmentCandidates(session GuidedSession) (GuidedSession, []ctdf.ScheduledTrain, error) {
	from, to, pending := session.CurrentSegment()
	if !pending {
		return session, nil, ErrSessionComplete
	}

	next, err := session.clone()
	if err != nil {
		return session, nil, err
	}

	lowerBound := session.SearchTime
	if len(session.Legs) > 0 {
		lowerBound = session.Legs[len(session.Legs)-1].ArrivalTime
	}

	candidates := p.Timetable.DepartingWithin(from, to, lowerBound.Add(-SearchWindowBefore), lowerBound.Add(SearchWindowAfter))

	if len(session.Legs) > 0 {
		earliestConnection := session.Legs[len(session.Legs)-1].ArrivalTime.Add(ConnectionBuffer)

		util.InPlaceFilter(&candidates, func(train ctdf.ScheduledTrain) bool {
			return train.DepartureTime.After(earliestConnection)
		})
	}

	if len(candidates) == 0 {
		return session, nil, fmt.Errorf("%w: %s to %s after %s", ErrNoTrainsForSegment, from, to, lowerBound)
	}

	next.Candidates = candidates

	return next, append([]ctdf.ScheduledTrain(nil), candidates...), nil
}

// SelectTrain takes one of the pending candidates as the leg for the current segment
func (p *Planner) SelectTrain(session GuidedSession, index int) (GuidedSession, error) {
	if len(session.Candidates) == 0 {
		return session, fmt.Errorf("%w: no candidates pending", ErrInvalidSelection)
	}

	if index < 0 || index >= len(session.Candidates) {
		return session, fmt.Errorf("%w: index %d outside of %d candidates", ErrInvalidSelection, index, len(session.Candidates))
	}

	next, err := session.clone()
	if err != nil {
		return session, err
	}

	next.Legs = append(next.Legs, session.Candidates[index])
	next.Segment++
	next.Candidates = nil

	log.Debug().
		Str("train", session.Candidates[index].Identifier()).
		Int("segment", next.Segment).
		Msg("Selected train for guided journey plan")

	return next, nil
}
