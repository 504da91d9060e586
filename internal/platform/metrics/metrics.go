package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the cleaning endpoints. Counts are
// labeled by cleaner and outcome so dashboards can track the share of
// invalid input per field.
type Metrics struct {
	CleanTotal    *prometheus.CounterVec
	CleanDuration *prometheus.HistogramVec
}

// New creates a Metrics instance registered against reg. Tests pass a
// fresh prometheus.NewRegistry() to avoid duplicate registration.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		CleanTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "canadata_clean_total",
			Help: "Total number of cleaning calls by cleaner and outcome",
		}, []string{"cleaner", "outcome"}),
		CleanDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "canadata_clean_duration_seconds",
			Help:    "Duration of cleaning calls",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}, []string{"cleaner"}),
	}
}

// ObserveClean records one cleaning call.
// Call with the start time of the operation being observed.
func (m *Metrics) ObserveClean(cleaner, outcome string, start time.Time) {
	m.CleanTotal.WithLabelValues(cleaner, outcome).Inc()
	m.CleanDuration.WithLabelValues(cleaner).Observe(time.Since(start).Seconds())
}
