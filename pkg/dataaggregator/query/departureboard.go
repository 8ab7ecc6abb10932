package query

import (
	"github.com/travigo/metroplanner/pkg/ctdf"
)

type DepartureBoard struct {
	Station   string
	Count     int
	StartTime ctdf.TimeOfDay
}
