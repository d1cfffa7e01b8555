// Package inspect exposes a running Filament graph for observation: a
// JSON snapshot endpoint, Prometheus collectors over the runtime counters,
// and a WebSocket stream of periodic snapshots for live dashboards.
//
// The inspector is strictly read-only. It samples atomic counters the core
// maintains anyway; it never reaches into the graph and never drives it
// from another goroutine.
package inspect
