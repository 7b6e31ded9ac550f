package appcontext

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/mcortesi/dinjector/mapping"
	"github.com/mcortesi/dinjector/observability"
)

func TestMetricsRecorded(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	metrics, err := observability.NewMetrics(provider.Meter("test"))
	if err != nil {
		t.Fatalf("NewMetrics failed: %v", err)
	}

	app := newApp(t, mapping.NewDefinitions().
		Add("v", mapping.RawMapping{"constructor": func() int { return 1 }}),
		WithMetrics(metrics))
	app.MustGet("v")
	app.MustGet("v")
	_, _ = app.Get("missing")

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}

	outcomes := make(map[string]int64)
	var constructions uint64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch m.Name {
			case observability.MetricGetTotal:
				for _, dp := range m.Data.(metricdata.Sum[int64]).DataPoints {
					outcome, _ := dp.Attributes.Value(attribute.Key(observability.AttrOutcome))
					outcomes[outcome.AsString()] += dp.Value
				}
			case observability.MetricConstructDuration:
				for _, dp := range m.Data.(metricdata.Histogram[float64]).DataPoints {
					constructions += dp.Count
				}
			}
		}
	}

	want := map[string]int64{
		observability.OutcomeBuilt: 1,
		observability.OutcomeHit:   1,
		observability.OutcomeError: 1,
	}
	for outcome, n := range want {
		if outcomes[outcome] != n {
			t.Errorf("outcome %s: expected %d, got %d", outcome, n, outcomes[outcome])
		}
	}
	if constructions != 1 {
		t.Errorf("expected 1 construction, got %d", constructions)
	}
}

func TestBuildSpans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	newApp(t, mapping.NewDefinitions().
		Add("v", mapping.RawMapping{"type": "value", "value": 1}),
		WithTracer(tp.Tracer("test")))

	names := make(map[string]bool)
	for _, span := range exporter.GetSpans() {
		names[span.Name] = true
	}
	for _, want := range []string{observability.SpanBuild, observability.SpanPreprocess, observability.SpanValidate} {
		if !names[want] {
			t.Errorf("expected span %s, got %v", want, names)
		}
	}
}

func TestBuildSpanRecordsError(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, err := New(mapping.NewDefinitions().Add("x", mapping.RawMapping{"type": "nope"}), nil,
		WithTracer(tp.Tracer("test")))
	if err == nil {
		t.Fatal("expected error")
	}

	for _, span := range exporter.GetSpans() {
		if span.Name == observability.SpanBuild && len(span.Events) == 0 {
			t.Error("expected build span to record the error")
		}
	}
}
