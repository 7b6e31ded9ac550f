package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const defaultTracerName = "github.com/mcortesi/dinjector"

// Span names.
const (
	SpanBuild      = "dinjector.build"
	SpanPreprocess = "dinjector.preprocess"
	SpanValidate   = "dinjector.validate"
)

// Attribute keys.
const (
	AttrContextID = "dinjector.context_id"
	AttrMapping   = "dinjector.mapping"
	AttrType      = "dinjector.type"
	AttrOutcome   = "dinjector.outcome"
	AttrStatus    = "dinjector.status"
	AttrCount     = "dinjector.mappings"
)

// Tracer returns a named tracer from the global provider.
func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}

// DefaultTracer returns the tracer used when none is configured.
func DefaultTracer() trace.Tracer {
	return Tracer(defaultTracerName)
}

// StartSpan starts a span on tracer, falling back to the default tracer.
func StartSpan(ctx context.Context, tracer trace.Tracer, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if tracer == nil {
		tracer = DefaultTracer()
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// EndSpan records err on span, if any, and ends it.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
