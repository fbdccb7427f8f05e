package assistant

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// aiCalls counts collaborator calls by operation and outcome.
	aiCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_collaborator_calls_total",
			Help: "Total number of AI collaborator calls.",
		},
		[]string{"op", "outcome"},
	)

	// aiLat records collaborator call duration in seconds by operation.
	// Buckets stretch further than HTTP defaults since model calls are slow.
	aiLat = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ai_collaborator_call_duration_seconds",
			Help:    "Duration of AI collaborator calls in seconds.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 4, 8, 15, 30},
		},
		[]string{"op"},
	)
)

func init() {
	prometheus.MustRegister(aiCalls, aiLat)
}

// observeCall records one collaborator call for dashboards and SLOs.
func observeCall(op, outcome string, d time.Duration) {
	aiCalls.WithLabelValues(op, outcome).Inc()
	aiLat.WithLabelValues(op).Observe(d.Seconds())
}
