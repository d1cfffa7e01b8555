package reactive

// Listener is anything that can be notified when a dependency changes.
// This interface is implemented by memos and effects.
type Listener interface {
	// MarkDirty notifies the listener that one of its dependencies has changed.
	// For memos, this invalidates the cached value and propagates onward.
	// For effects, this schedules the effect for the next flush.
	MarkDirty()

	// ID returns a unique identifier for this listener.
	ID() uint64
}

// sourceTracker is implemented by listeners that rebuild their dependency
// edge set each run. Signals call addSource so the subscriber can cut the
// reverse edge when it re-tracks or is disposed.
type sourceTracker interface {
	Listener
	addSource(source *signalBase)
}

// Cleanup is a function returned by effects to clean up resources.
// It is called before the effect re-runs and when the effect is disposed.
type Cleanup func()
