package query

import (
	"github.com/travigo/metroplanner/pkg/ctdf"
)

type JourneyPlan struct {
	Mode ctdf.JourneyPlanMode

	Origin      string
	Destination string
	SearchTime  ctdf.TimeOfDay
}
