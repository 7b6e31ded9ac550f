// Package observability instruments the container with OpenTelemetry.
//
// Metrics count resolutions by outcome and time object construction;
// spans cover building an application context. Exporter setup belongs to
// the host application: pass in a Meter and a Tracer from whatever
// providers it configured, or rely on the otel globals.
//
//	metrics, err := observability.NewMetrics(otel.Meter("billing"))
//	ctx, err := appcontext.New(defs, types, appcontext.WithMetrics(metrics))
package observability
