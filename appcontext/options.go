package appcontext

import (
	"go.opentelemetry.io/otel/trace"

	"github.com/mcortesi/dinjector/logger"
	"github.com/mcortesi/dinjector/observability"
	"github.com/mcortesi/dinjector/resolver"
)

type options struct {
	resolvers []resolver.Resolver
	log       *logger.Logger
	metrics   *observability.Metrics
	tracer    trace.Tracer
}

// Option configures an AppContext.
type Option func(*options)

// WithResolvers adds argument resolvers ahead of the built-in ones, in order.
// An earlier resolver shadows later ones for every key it accepts.
func WithResolvers(resolvers ...resolver.Resolver) Option {
	return func(o *options) { o.resolvers = append(o.resolvers, resolvers...) }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *logger.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithMetrics records resolution and construction metrics.
func WithMetrics(metrics *observability.Metrics) Option {
	return func(o *options) { o.metrics = metrics }
}

// WithTracer sets the tracer used for build spans. The default is the
// global tracer provider.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) { o.tracer = tracer }
}

func newOptions(opts []Option) *options {
	o := &options{log: logger.Nop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
