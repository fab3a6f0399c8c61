// Package otel provides OpenTelemetry metric exporter bindings for appcore counters.
//
// [NewOTelExporter] registers an Int64ObservableCounter instrument for each
// appcore metric. A single callback reads [appcore.Engine.MetricsSnapshot] on
// each collection cycle.
//
// # What this package must NOT do
//
//   - Own the OTel MeterProvider — callers supply the Meter.
//   - Mutate engine state.
package otel
