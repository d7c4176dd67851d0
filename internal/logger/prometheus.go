package logger

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// PrometheusHook counts log statements per level.
type PrometheusHook struct {
	counter *prometheus.CounterVec
}

// Run implements zerolog.Hook run method.
func (h PrometheusHook) Run(_ *zerolog.Event, level zerolog.Level, _ string) {
	if level != zerolog.NoLevel && h.counter != nil {
		h.counter.WithLabelValues(level.String()).Inc()
	}
}

// NewPrometheusHook registers randstr_log_statements_total at reg and returns
// a hook feeding it. A counter already registered at reg is reused.
func NewPrometheusHook(service string, reg prometheus.Registerer) (PrometheusHook, error) {
	counter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "randstr_log_statements_total",
			Help:        "Number of log statements, differentiated by log level.",
			ConstLabels: prometheus.Labels{"service": service},
		},
		[]string{"level"},
	)

	if err := reg.Register(counter); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return PrometheusHook{}, errors.Wrap(err, "can't register log statement counter")
		}

		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return PrometheusHook{}, errors.Wrap(err, "log statement counter has an unexpected type")
		}

		counter = existing
	}

	return PrometheusHook{counter: counter}, nil
}
