package lazy

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsCollector defines the interface for collecting lazy value metrics.
type MetricsCollector interface {
	IncLoads()
	IncHits()
	IncPanics()
	GetMetrics() Metrics
}

type Metrics struct {
	Loads  int64 // Completed initializer calls
	Hits   int64 // Reads served from the cache
	Panics int64 // Initializer calls that panicked
}

// AtomicMetricsCollector is the default atomic-based metrics implementation.
type AtomicMetricsCollector struct {
	loads  atomic.Int64
	hits   atomic.Int64
	panics atomic.Int64
}

func (m *AtomicMetricsCollector) IncLoads()  { m.loads.Add(1) }
func (m *AtomicMetricsCollector) IncHits()   { m.hits.Add(1) }
func (m *AtomicMetricsCollector) IncPanics() { m.panics.Add(1) }
func (m *AtomicMetricsCollector) GetMetrics() Metrics {
	return Metrics{
		Loads:  m.loads.Load(),
		Hits:   m.hits.Load(),
		Panics: m.panics.Load(),
	}
}

// PrometheusMetricsCollector implements MetricsCollector using prometheus metrics.
type PrometheusMetricsCollector struct {
	Loads  prometheus.Counter
	Hits   prometheus.Counter
	Panics prometheus.Counter
}

// NewPrometheusMetricsCollector creates the lazy_* counters labelled with
// name and registers them with reg. A nil reg uses the default registerer.
func NewPrometheusMetricsCollector(name string, reg prometheus.Registerer) (*PrometheusMetricsCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	labels := prometheus.Labels{"name": name}
	m := &PrometheusMetricsCollector{
		Loads: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "lazy_loads_total",
			Help:        "Total completed initializer calls.",
			ConstLabels: labels,
		}),
		Hits: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "lazy_hits_total",
			Help:        "Total reads served from the cached value.",
			ConstLabels: labels,
		}),
		Panics: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "lazy_panics_total",
			Help:        "Total initializer calls that panicked.",
			ConstLabels: labels,
		}),
	}

	for _, c := range []prometheus.Collector{m.Loads, m.Hits, m.Panics} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *PrometheusMetricsCollector) IncLoads()  { m.Loads.Inc() }
func (m *PrometheusMetricsCollector) IncHits()   { m.Hits.Inc() }
func (m *PrometheusMetricsCollector) IncPanics() { m.Panics.Inc() }
func (m *PrometheusMetricsCollector) GetMetrics() Metrics {
	// Prometheus metrics are scraped via /metrics endpoint. This method returns zeros.
	return Metrics{}
}
