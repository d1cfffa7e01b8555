package reactive

import "sync/atomic"

// Counters aggregates runtime activity counters. They are written by the
// core on the hot path with atomic adds and read by external observers
// such as the inspector's Prometheus collectors.
type Counters struct {
	SignalWrites   atomic.Int64
	EffectRuns     atomic.Int64
	MemoRecomputes atomic.Int64
	FlushPasses    atomic.Int64
}

// stats is the process-wide counter set.
var stats Counters

// StatsSnapshot is a point-in-time copy of the runtime counters.
type StatsSnapshot struct {
	SignalWrites   int64 `json:"signal_writes"`
	EffectRuns     int64 `json:"effect_runs"`
	MemoRecomputes int64 `json:"memo_recomputes"`
	FlushPasses    int64 `json:"flush_passes"`
}

// Stats returns a snapshot of the runtime counters.
func Stats() StatsSnapshot {
	return StatsSnapshot{
		SignalWrites:   stats.SignalWrites.Load(),
		EffectRuns:     stats.EffectRuns.Load(),
		MemoRecomputes: stats.MemoRecomputes.Load(),
		FlushPasses:    stats.FlushPasses.Load(),
	}
}
