package lazy_test

import (
	"testing"

	"github.com/alextanhongpin/lazy"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestAtomicMetricsCollector(t *testing.T) {
	var m lazy.AtomicMetricsCollector
	m.IncLoads()
	m.IncHits()
	m.IncHits()
	m.IncPanics()

	is := assert.New(t)
	is.Equal(lazy.Metrics{Loads: 1, Hits: 2, Panics: 1}, m.GetMetrics())
}

func TestPrometheusMetricsCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := lazy.NewPrometheusMetricsCollector("config", reg)

	is := assert.New(t)
	is.Nil(err)

	s, err := lazy.NewSyncWithOptions(func() string {
		return "dsn"
	}, lazy.Options{
		Name:    "config",
		Metrics: m,
	})
	is.Nil(err)

	for n := 0; n < 3; n++ {
		is.Equal("dsn", s.Get())
	}

	is.Equal(float64(1), testutil.ToFloat64(m.Loads))
	is.Equal(float64(2), testutil.ToFloat64(m.Hits))
	is.Equal(float64(0), testutil.ToFloat64(m.Panics))
	is.Equal(lazy.Metrics{}, m.GetMetrics())

	_, err = lazy.NewPrometheusMetricsCollector("config", reg)
	var are prometheus.AlreadyRegisteredError
	is.ErrorAs(err, &are)

	_, err = lazy.NewPrometheusMetricsCollector("other", reg)
	is.Nil(err)
}
