package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const defaultMeterName = "github.com/mcortesi/dinjector"

// Outcomes recorded for each resolution.
const (
	OutcomeHit   = "hit"
	OutcomeBuilt = "built"
	OutcomeError = "error"
)

// Metric names.
const (
	MetricGetTotal          = "dinjector.get.total"
	MetricConstructDuration = "dinjector.construct.duration"
	MetricBuildTotal        = "dinjector.build.total"
)

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds OpenTelemetry metric instruments for the container.
type Metrics struct {
	getTotal          metric.Int64Counter
	constructDuration metric.Float64Histogram
	buildTotal        metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	getTotal, err := meter.Int64Counter(MetricGetTotal,
		metric.WithDescription("Total number of resolutions by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricGetTotal, err)
	}

	constructDuration, err := meter.Float64Histogram(MetricConstructDuration,
		metric.WithDescription("Duration of object construction in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricConstructDuration, err)
	}

	buildTotal, err := meter.Int64Counter(MetricBuildTotal,
		metric.WithDescription("Total number of application contexts built by status"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricBuildTotal, err)
	}

	return &Metrics{
		getTotal:          getTotal,
		constructDuration: constructDuration,
		buildTotal:        buildTotal,
	}, nil
}

// NewDefaultMetrics creates metric instruments on the global meter provider.
func NewDefaultMetrics() (*Metrics, error) {
	return NewMetrics(Meter(defaultMeterName))
}

// RecordGet records one resolution of a mapping.
func (m *Metrics) RecordGet(ctx context.Context, mapping, outcome string) {
	if m == nil {
		return
	}
	m.getTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrMapping, mapping),
		attribute.String(AttrOutcome, outcome),
	))
}

// RecordConstruction records the time a mapping type spent creating an object.
func (m *Metrics) RecordConstruction(ctx context.Context, mapping, typeName string, duration time.Duration) {
	if m == nil {
		return
	}
	m.constructDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String(AttrMapping, mapping),
		attribute.String(AttrType, typeName),
	))
}

// RecordBuild records an attempt to build an application context.
func (m *Metrics) RecordBuild(ctx context.Context, status string) {
	if m == nil {
		return
	}
	m.buildTotal.Add(ctx, 1, metric.WithAttributes(attribute.String(AttrStatus, status)))
}
