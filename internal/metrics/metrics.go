package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SessionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hospitals_sessions_total",
		Help: "Finished sessions by final status and failing stage",
	}, []string{"status", "stage"})
	SessionDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "hospitals_session_duration_ms",
		Help:    "Session duration from location report to final state in milliseconds",
		Buckets: []float64{50, 100, 200, 500, 1000, 2000, 5000, 10000, 30000},
	})
	ResultsReturned = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "hospitals_results_returned",
		Help:    "Number of hospitals in each successful result set",
		Buckets: []float64{0, 1, 2, 5, 8, 10},
	})
	OverpassRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hospitals_overpass_requests_total",
		Help: "Overpass requests by outcome",
	}, []string{"outcome"})
	OverpassDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "hospitals_overpass_duration_ms",
		Help:    "Overpass request duration in milliseconds",
		Buckets: []float64{50, 100, 200, 500, 1000, 2000, 5000, 10000, 30000},
	})
	AuditDroppedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hospitals_audit_dropped_total",
		Help: "Audit records dropped because the queue was full or closed",
	})
)

func init() {
	prometheus.MustRegister(SessionsTotal)
	prometheus.MustRegister(SessionDurationMs)
	prometheus.MustRegister(ResultsReturned)
	prometheus.MustRegister(OverpassRequestsTotal)
	prometheus.MustRegister(OverpassDurationMs)
	prometheus.MustRegister(AuditDroppedTotal)
}

// Handler exposes the registered metrics for scraping.
func Handler() http.Handler { return promhttp.Handler() }
