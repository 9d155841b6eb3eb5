package reconcile

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures reconciliation metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "tiny").
	Namespace string

	// Buckets are the histogram buckets for update duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Metrics holds the Prometheus collectors of a Renderer.
type Metrics struct {
	patchOps       *prometheus.CounterVec
	mounts         *prometheus.CounterVec
	updateDuration prometheus.Histogram
}

// NewMetrics registers the reconciliation collectors:
//
//   - tiny_patch_ops_total{op}: operations applied by kind
//   - tiny_mounts_total{kind}: components mounted by variant
//   - tiny_update_duration_seconds: composite update duration
//
// Registering twice on the same registry panics, as with promauto.
func NewMetrics(config MetricsConfig) *Metrics {
	if config.Namespace == "" {
		config.Namespace = "tiny"
	}
	if config.Buckets == nil {
		config.Buckets = prometheus.DefBuckets
	}
	if config.Registry == nil {
		config.Registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		patchOps: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "patch_ops_total",
			Help:      "Total number of child-list operations applied to the document",
		}, []string{"op"}),

		mounts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "mounts_total",
			Help:      "Total number of components mounted",
		}, []string{"kind"}),

		updateDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Name:      "update_duration_seconds",
			Help:      "Composite component update duration in seconds",
			Buckets:   config.Buckets,
		}),
	}
}

func (r *Renderer) countOps(ops []Op) {
	if r.metrics == nil {
		return
	}
	for _, op := range ops {
		r.metrics.patchOps.WithLabelValues(op.Kind.String()).Inc()
	}
}

func (r *Renderer) countMount(k Kind) {
	if r.metrics == nil {
		return
	}
	r.metrics.mounts.WithLabelValues(k.String()).Inc()
}

func (r *Renderer) observeUpdate(start time.Time) {
	if r.metrics == nil {
		return
	}
	r.metrics.updateDuration.Observe(time.Since(start).Seconds())
}
