package reactive

// Effect is a reactive side effect that re-runs when its dependencies
// change. Effects run immediately when created, establishing their first
// dependency set, and are enqueued for the next flush whenever a tracked
// source's write propagates to them.
//
// The effect function may return a Cleanup that is called before the effect
// re-runs and when the effect is disposed. Additional cleanups can be
// registered during a run with OnCleanup; they attach to that run and are
// invoked at the same points.
type Effect struct {
	id uint64

	// fn is the effect function to run.
	fn func() Cleanup

	// cleanup is the cleanup function returned by the last run.
	cleanup Cleanup

	// cleanups are ad-hoc cleanups registered via OnCleanup during the
	// last run. Cleared before each re-run.
	cleanups []func()

	// sources are the signals/memos this effect depends on.
	// Rebuilt every run; stale edges are pruned before re-tracking.
	sources []*signalBase

	// owner is the Owner that owns this effect.
	owner *Owner

	// pending is true while the effect sits in the flush queue.
	pending bool

	// disposed effects are never re-entered and hold no source edges.
	disposed bool
}

// NewEffect creates an effect within the current owner scope and runs it
// synchronously. It returns the effect; call Dispose to permanently detach
// it.
//
// Example:
//
//	e := NewEffect(func() Cleanup {
//	    fmt.Println("Count is:", count.Get())
//	    return func() { fmt.Println("cleanup") }
//	})
//	defer e.Dispose()
func NewEffect(fn func() Cleanup) *Effect {
	e := &Effect{
		id:    nextID(),
		fn:    fn,
		owner: getCurrentOwner(),
	}

	if e.owner != nil {
		e.owner.register(e)
	}

	// First run establishes the dependency set.
	e.run()

	return e
}

// MarkDirty enqueues the effect for the next flush.
// An effect already pending is not enqueued twice.
// Implements the Listener interface.
func (e *Effect) MarkDirty() {
	if e.disposed || e.pending {
		return
	}
	e.pending = true
	enqueueEffect(e)
}

// ID returns the unique identifier for this effect.
// Implements the Listener interface.
func (e *Effect) ID() uint64 {
	return e.id
}

// addSource adds a source dependency.
// Implements the sourceTracker interface.
func (e *Effect) addSource(source *signalBase) {
	for _, s := range e.sources {
		if s == source {
			return
		}
	}
	e.sources = append(e.sources, source)
}

// run executes the effect function: previous cleanups first, then stale
// edges are cut, then the body runs with this effect as the active
// tracking subscriber and cleanup target.
//
// A panic in the body propagates to whoever triggered the run (the write
// or the flush). Cleanups registered before the panic are NOT run for that
// aborted pass; callers needing stronger guarantees must guard inside the
// body. Tracking state is still restored so the graph stays usable.
func (e *Effect) run() {
	if e.disposed {
		return
	}

	e.pending = false
	e.runCleanups()
	e.detachSources()

	ctx := getTrackingContext()
	prevListener := ctx.currentListener
	prevEffect := ctx.activeEffect
	ctx.currentListener = e
	ctx.activeEffect = e
	defer func() {
		ctx.currentListener = prevListener
		ctx.activeEffect = prevEffect
	}()

	stats.EffectRuns.Add(1)
	e.cleanup = e.fn()
}

// runCleanups invokes the previous run's returned cleanup, then the ad-hoc
// cleanups in registration order, and clears both.
func (e *Effect) runCleanups() {
	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}
	for _, fn := range e.cleanups {
		fn()
	}
	e.cleanups = nil
}

// detachSources cuts every edge to a tracked source.
func (e *Effect) detachSources() {
	for _, source := range e.sources {
		source.unsubscribe(e)
	}
	e.sources = e.sources[:0]
}

// Dispose runs final cleanups and permanently detaches all source edges.
// After disposal no future write can re-trigger the effect. Disposal is
// idempotent.
func (e *Effect) Dispose() {
	e.dispose()
}

func (e *Effect) dispose() {
	if e.disposed {
		return
	}
	e.disposed = true

	e.runCleanups()
	e.detachSources()
	e.sources = nil
}

// Ensure Effect implements sourceTracker.
var _ sourceTracker = (*Effect)(nil)
