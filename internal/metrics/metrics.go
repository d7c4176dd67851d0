// Package metrics exposes randstr generation statistics as prometheus counters.
package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/GoPowerDNS-Admin/go-randstr/randstr"
)

// Error kinds used as label values of randstr_generate_errors_total.
const (
	KindInvalidConfig = "invalid_config"
	KindExhausted     = "exhausted"
	KindSource        = "source"
)

// Collector implements randstr.Observer on its own registry.
type Collector struct {
	registry  *prometheus.Registry
	generated prometheus.Counter
	rejected  *prometheus.CounterVec
	failures  *prometheus.CounterVec
}

// New returns a Collector whose counters carry the service label.
func New(service string) *Collector {
	labels := prometheus.Labels{"service": service}

	c := &Collector{
		registry: prometheus.NewRegistry(),
		generated: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "randstr_generated_total",
			Help:        "Number of values returned by Generate.",
			ConstLabels: labels,
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "randstr_rejected_total",
			Help:        "Number of rejected candidates, differentiated by reason.",
			ConstLabels: labels,
		}, []string{"reason"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "randstr_generate_errors_total",
			Help:        "Number of failed Generate calls, differentiated by kind.",
			ConstLabels: labels,
		}, []string{"kind"}),
	}

	c.registry.MustRegister(c.generated, c.rejected, c.failures)

	return c
}

// Registry returns the registry holding the collector's counters. Other
// collectors, e.g. the log statement counter, may register there too.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Observe implements randstr.Observer.
func (c *Collector) Observe(stats randstr.Stats) {
	c.generated.Add(float64(stats.Accepted))
	c.rejected.WithLabelValues("duplicate").Add(float64(stats.Duplicates))
	c.rejected.WithLabelValues("predicate").Add(float64(stats.Skipped))

	if stats.Err != nil {
		c.failures.WithLabelValues(kind(stats.Err)).Inc()
	}
}

// WriteTextfile writes all registered metrics to path in the text exposition
// format understood by the node_exporter textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return errors.Wrapf(err, "failed to write metrics to %s", path)
	}

	return nil
}

func kind(err error) string {
	switch {
	case errors.Is(err, randstr.ErrInvalidConfig):
		return KindInvalidConfig
	case errors.Is(err, randstr.ErrCombinationsExhausted):
		return KindExhausted
	default:
		return KindSource
	}
}
