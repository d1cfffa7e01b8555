package inspect

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/filament-ui/filament/pkg/reactive"
	"github.com/filament-ui/filament/pkg/view"
)

// MetricsConfig configures the Prometheus collectors.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "filament").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus collectors.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "filament",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// RegisterMetrics registers counter collectors over the runtime's activity
// counters. The collectors sample on scrape; nothing is pushed.
func RegisterMetrics(opts ...MetricsOption) error {
	cfg := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	counters := []struct {
		name string
		help string
		fn   func() float64
	}{
		{"signal_writes_total", "Accepted signal writes.",
			func() float64 { return float64(reactive.Stats().SignalWrites) }},
		{"effect_runs_total", "Effect executions, initial runs included.",
			func() float64 { return float64(reactive.Stats().EffectRuns) }},
		{"memo_recomputes_total", "Memo recomputations.",
			func() float64 { return float64(reactive.Stats().MemoRecomputes) }},
		{"flush_passes_total", "Scheduler flush passes.",
			func() float64 { return float64(reactive.Stats().FlushPasses) }},
		{"reconcile_steps_total", "List reconciliation passes.",
			func() float64 { return float64(view.ReconcileSteps()) }},
	}

	for _, c := range counters {
		collector := prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        c.name,
			Help:        c.help,
			ConstLabels: cfg.ConstLabels,
		}, c.fn)
		if err := cfg.Registry.Register(collector); err != nil {
			return fmt.Errorf("register %s: %w", c.name, err)
		}
	}

	return nil
}
