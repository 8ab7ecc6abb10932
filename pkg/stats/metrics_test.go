package stats

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/travigo/metroplanner/pkg/ctdf"
)

func TestRecordPlanRequest(t *testing.T) {
	counter := planRequests.WithLabelValues(string(ctdf.JourneyPlanModeGuided), "no_route")
	before := testutil.ToFloat64(counter)

	RecordPlanRequest(ctdf.JourneyPlanModeGuided, "no_route")
	RecordPlanRequest(ctdf.JourneyPlanModeGuided, "no_route")

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestRecordGuidedSelection(t *testing.T) {
	before := testutil.ToFloat64(guidedSelections)

	RecordGuidedSelection()

	assert.Equal(t, before+1, testutil.ToFloat64(guidedSelections))
}

func TestRecordItinerariesReturned(t *testing.T) {
	RecordItinerariesReturned(8)

	assert.Equal(t, 1, testutil.CollectAndCount(itinerariesReturned))
}
