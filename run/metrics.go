package run

import "github.com/prometheus/client_golang/prometheus"

// Metrics exposes Prometheus counters/gauges for operators watching the
// batch job (spec.md §5 resource model).
type Metrics struct {
	runsTotal     *prometheus.CounterVec
	computationMs prometheus.Histogram
	silhouette    prometheus.Gauge
}

// NewMetrics builds and registers a Metrics against reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "voteclust_runs_total",
			Help: "Total pipeline runs, labeled by terminal outcome.",
		}, []string{"outcome"}),
		computationMs: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "voteclust_computation_milliseconds",
			Help:    "Wall-clock duration of a completed pipeline run.",
			Buckets: prometheus.ExponentialBuckets(100, 2, 12),
		}),
		silhouette: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "voteclust_latest_silhouette",
			Help: "Silhouette coefficient of the most recently completed run.",
		}),
	}
	reg.MustRegister(m.runsTotal, m.computationMs, m.silhouette)
	return m
}

func (m *Metrics) observeCompleted(ms int64, silhouette float64) {
	m.runsTotal.WithLabelValues("completed").Inc()
	m.computationMs.Observe(float64(ms))
	m.silhouette.Set(silhouette)
}

func (m *Metrics) observeFailed(kind Kind) {
	m.runsTotal.WithLabelValues(string(kind)).Inc()
}
