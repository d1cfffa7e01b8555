package view

import "sync/atomic"

// viewCounters tracks reconciler activity for the inspector.
type viewCounters struct {
	reconcileSteps atomic.Int64
}

var stats viewCounters

// ReconcileSteps returns the number of reconciliation passes (keyed and
// positional) run so far.
func ReconcileSteps() int64 {
	return stats.reconcileSteps.Load()
}
