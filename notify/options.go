package notify

import (
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Option configures TryCancelSummary.
type Option func(*config)

type config struct {
	logger *slog.Logger
	tracer trace.Tracer
	meter  metric.Meter
}

func newConfig(opts ...Option) *config {
	c := &config{logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// WithLogger sets the logger. If not provided, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithTracer sets an OpenTelemetry tracer. Each call then records a
// notify.try_cancel_summary span.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *config) {
		c.tracer = tracer
	}
}

// WithMeter sets an OpenTelemetry meter used for the
// notify.summary_cancels counter.
func WithMeter(meter metric.Meter) Option {
	return func(c *config) {
		c.meter = meter
	}
}
