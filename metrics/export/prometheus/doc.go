// Package prometheus renders appcore metrics for Prometheus scraping.
//
// [NewPrometheusExporter] accepts an [appcore.Engine] and exposes an [http.Handler]
// that renders all appcore counters in Prometheus text exposition format.
// Counter names are prefixed feedrecap_*_total.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the Handler.
//   - Mutate engine state.
package prometheus
