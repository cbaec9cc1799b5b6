package factory

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics holds the factory's Prometheus collectors.
type metrics struct {
	created     *prometheus.CounterVec
	failures    *prometheus.CounterVec
	entriesSize prometheus.Histogram
}

// newMetrics registers the collectors with registry. Factories sharing a
// registry and namespace share the collectors already registered there.
func newMetrics(registry prometheus.Registerer, namespace string) *metrics {
	return &metrics{
		created: register(registry, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "elements_created_total",
			Help:      "Total number of elements constructed, by tag",
		}, []string{"tag"})),

		failures: register(registry, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assignment_failures_total",
			Help:      "Total number of rejected configuration entries, by tag and action",
		}, []string{"tag", "action"})),

		entriesSize: register(registry, prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "entries_per_element",
			Help:      "Number of configuration entries applied per element",
			Buckets:   []float64{0, 1, 2, 4, 8, 16, 32},
		})),
	}
}

// register adds c to registry, returning the existing collector when an
// identical one is already registered. Any other registration error panics,
// as promauto does.
func register[C prometheus.Collector](registry prometheus.Registerer, c C) C {
	if err := registry.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

func (m *metrics) observe(tag string, entries int) {
	if m == nil {
		return
	}
	m.created.WithLabelValues(tag).Inc()
	m.entriesSize.Observe(float64(entries))
}

func (m *metrics) fail(tag, action string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(tag, action).Inc()
}
