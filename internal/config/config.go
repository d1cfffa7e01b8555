// Package config loads the CLI configuration from filament.toml.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the root filament.toml document.
type Config struct {
	Inspector InspectorConfig `toml:"inspector"`
	Bench     BenchConfig     `toml:"bench"`
}

// InspectorConfig configures the inspector server.
type InspectorConfig struct {
	// Addr is the inspector listen address.
	Addr string `toml:"addr"`

	// StreamIntervalMS is the /live push period in milliseconds.
	StreamIntervalMS int `toml:"stream_interval_ms"`
}

// BenchConfig configures the bench command.
type BenchConfig struct {
	// Widths are the diamond-graph fan-out sizes to sweep.
	Widths []int `toml:"widths"`

	// ListSizes are the keyed-list lengths to sweep.
	ListSizes []int `toml:"list_sizes"`

	// Iterations is the number of timed runs per scenario.
	Iterations int `toml:"iterations"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Inspector: InspectorConfig{
			Addr:             ":9470",
			StreamIntervalMS: 1000,
		},
		Bench: BenchConfig{
			Widths:     []int{1, 10, 100, 1000},
			ListSizes:  []int{10, 100, 1000},
			Iterations: 100,
		},
	}
}

// Load reads path and merges it over the defaults. A missing file is not
// an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects configurations the commands cannot run with.
func (c Config) Validate() error {
	if c.Inspector.Addr == "" {
		return fmt.Errorf("inspector.addr must not be empty")
	}
	if c.Inspector.StreamIntervalMS <= 0 {
		return fmt.Errorf("inspector.stream_interval_ms must be positive, got %d", c.Inspector.StreamIntervalMS)
	}
	if c.Bench.Iterations <= 0 {
		return fmt.Errorf("bench.iterations must be positive, got %d", c.Bench.Iterations)
	}
	for _, w := range c.Bench.Widths {
		if w <= 0 {
			return fmt.Errorf("bench.widths entries must be positive, got %d", w)
		}
	}
	for _, n := range c.Bench.ListSizes {
		if n <= 0 {
			return fmt.Errorf("bench.list_sizes entries must be positive, got %d", n)
		}
	}
	return nil
}
