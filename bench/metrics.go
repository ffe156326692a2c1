package bench

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the Prometheus instruments updated by a Runner. A nil *Metrics
// records nothing.
type Metrics struct {
	ops      *prometheus.CounterVec
	duration *prometheus.HistogramVec
	spills   *prometheus.CounterVec
}

// NewMetrics registers the bench instruments on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ops: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "flatbench_ops_total",
			Help: "The total number of container operations performed, by kind",
		}, []string{"container", "storage", "op"}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "flatbench_workload_seconds",
			Help:    "Wall time of one workload run",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), //nolint:mnd
		}, []string{"container", "storage"}),

		spills: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "flatbench_spills_total",
			Help: "The number of times an inline buffer moved to the heap",
		}, []string{"container"}),
	}
}

func (m *Metrics) observe(w Workload, r Result, elapsed time.Duration) {
	if m == nil {
		return
	}

	container, storage := string(w.Container), string(w.Storage)

	m.ops.WithLabelValues(container, storage, "insert").Add(float64(r.Inserted + r.Rejected))
	m.ops.WithLabelValues(container, storage, "erase").Add(float64(r.EraseCalls))
	m.ops.WithLabelValues(container, storage, "lookup").Add(float64(r.Lookups))
	m.duration.WithLabelValues(container, storage).Observe(elapsed.Seconds())

	if w.Storage == StorageSmall {
		m.spills.WithLabelValues(container).Add(float64(r.Spills))
	}
}
