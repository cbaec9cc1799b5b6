package factory

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for spans started by Make.
const defaultTracerName = "tagkit"

// Config configures a Factory.
type Config struct {
	// Logger receives construction logs. If nil, slog.Default() is used.
	Logger *slog.Logger

	// Registry receives the factory's Prometheus collectors.
	// If nil, no metrics are recorded.
	Registry prometheus.Registerer

	// Namespace is the metrics namespace (default: "tagkit").
	Namespace string

	// TracerName is the name passed to the global tracer provider
	// (default: "tagkit"). Ignored when Tracer is set.
	TracerName string

	// Tracer overrides the tracer resolved from TracerName.
	Tracer trace.Tracer
}

// Option configures a Factory.
type Option func(*Config)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithMetrics registers the factory's collectors with registry.
func WithMetrics(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithTracerName sets the tracer name used with the global provider.
func WithTracerName(name string) Option {
	return func(c *Config) {
		c.TracerName = name
	}
}

// WithTracer sets the tracer directly.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Config) {
		c.Tracer = tracer
	}
}

func defaultConfig() Config {
	return Config{
		Namespace:  "tagkit",
		TracerName: defaultTracerName,
	}
}

func (c *Config) resolve() {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Namespace == "" {
		c.Namespace = "tagkit"
	}
	if c.Tracer == nil {
		name := c.TracerName
		if name == "" {
			name = defaultTracerName
		}
		c.Tracer = otel.Tracer(name)
	}
}
