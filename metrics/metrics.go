// Package metrics collects Prometheus metrics for cascade simulation and
// seed selection on a private registry.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/seedspread/cascade"
)

// Collector holds all Prometheus metrics for a run. Every method is safe
// for concurrent use, so ObserveCascade may serve as a hook for a parallel
// Estimator.
type Collector struct {
	// Registry for this collector instance
	registry *prometheus.Registry

	// Simulation metrics
	Cascades    prometheus.Counter
	CascadeSize prometheus.Histogram

	// Selection metrics
	Candidates *prometheus.CounterVec
	Selection  *prometheus.HistogramVec
}

// NewCollector creates a collector whose metric names carry namespace.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	cascades := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cascades_total",
			Help:      "Total number of completed cascade simulations",
		},
	)

	cascadeSize := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cascade_size",
			Help:      "Number of nodes activated per cascade",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 16),
		},
	)

	candidates := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidates_evaluated_total",
			Help:      "Total number of candidate spread estimates",
		},
		[]string{"strategy"},
	)

	selection := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "selection_duration_seconds",
			Help:      "Seed selection duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"strategy"},
	)

	registry.MustRegister(cascades, cascadeSize, candidates, selection)

	return &Collector{
		registry:    registry,
		Cascades:    cascades,
		CascadeSize: cascadeSize,
		Candidates:  candidates,
		Selection:   selection,
	}
}

// Registry returns the private registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// ObserveCascade records one finished cascade. Its signature matches
// cascade.WithOnComplete.
func (c *Collector) ObserveCascade(r cascade.Result) {
	c.Cascades.Inc()
	c.CascadeSize.Observe(float64(r.Size()))
}

// CandidateEvaluated records one candidate estimate for strategy.
func (c *Collector) CandidateEvaluated(strategy string) {
	c.Candidates.WithLabelValues(strategy).Inc()
}

// ObserveSelection records how long strategy took to pick its seeds.
func (c *Collector) ObserveSelection(strategy string, d time.Duration) {
	c.Selection.WithLabelValues(strategy).Observe(d.Seconds())
}

// WriteText writes every metric in the Prometheus text exposition format.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
