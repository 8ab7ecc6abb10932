package stats

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/travigo/metroplanner/pkg/ctdf"
)

var (
	planRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "metroplanner_plan_requests_total",
		Help: "Journey plan requests by mode and outcome",
	}, []string{"mode", "outcome"})

	itinerariesReturned = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "metroplanner_itineraries_returned",
		Help:    "Number of itineraries returned by enumerate searches",
		Buckets: []float64{0, 1, 2, 4, 8, 16, 32},
	})

	guidedSelections = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "metroplanner_guided_selections_total",
		Help: "Trains selected in guided sessions",
	})
)

func init() {
	prometheus.MustRegister(planRequests, itinerariesReturned, guidedSelections)
}

func RecordPlanRequest(mode ctdf.JourneyPlanMode, outcome string) {
	planRequests.WithLabelValues(string(mode), outcome).Inc()
}

func RecordItinerariesReturned(count int) {
	itinerariesReturned.Observe(float64(count))
}

func RecordGuidedSelection() {
	guidedSelections.Inc()
}
