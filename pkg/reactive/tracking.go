package reactive

import (
	"runtime"
	"sync"
)

// trackingContext holds the reactive state for a goroutine: the active
// subscriber, the active owner, batch nesting, and the pending-effect queue.
// Each goroutine gets its own context so independent graphs on independent
// goroutines never observe each other's tracking state.
type trackingContext struct {
	// currentOwner is the Owner that will own newly created effects/memos.
	currentOwner *Owner

	// currentListener is what's currently tracking dependencies.
	// When a signal is read, it subscribes this listener.
	// nil means no tracking (reads don't create subscriptions).
	currentListener Listener

	// activeEffect is the effect whose body is currently executing, if any.
	// OnCleanup calls during the run attach to this effect's run.
	activeEffect *Effect

	// batchDepth tracks nested Batch() calls.
	// When > 0, writes mark and enqueue but do not flush.
	batchDepth int

	// pendingEffects is the FIFO queue of effects awaiting the next flush.
	pendingEffects []*Effect

	// flushing suppresses re-entrant flushes while a flush is in progress.
	flushing bool
}

// trackingContexts stores per-goroutine tracking contexts.
var trackingContexts sync.Map

// getGoroutineID returns a unique identifier for the current goroutine,
// parsed from the runtime stack header ("goroutine <id> ...").
func getGoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	var id uint64
	for i := 10; i < n; i++ { // Skip "goroutine "
		if buf[i] == ' ' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}

// getTrackingContext returns the tracking context for the current goroutine,
// creating one on first use.
func getTrackingContext() *trackingContext {
	gid := getGoroutineID()

	if ctx, ok := trackingContexts.Load(gid); ok {
		return ctx.(*trackingContext)
	}

	ctx := &trackingContext{}
	trackingContexts.Store(gid, ctx)
	return ctx
}

// getCurrentListener returns the current listener being tracked.
// Returns nil if no tracking is active.
func getCurrentListener() Listener {
	return getTrackingContext().currentListener
}

// setCurrentListener sets the current listener for dependency tracking.
// Returns the previous listener so it can be restored.
func setCurrentListener(l Listener) Listener {
	ctx := getTrackingContext()
	old := ctx.currentListener
	ctx.currentListener = l
	return old
}

// getCurrentOwner returns the current owner for the goroutine.
// Returns nil if no owner scope is active.
func getCurrentOwner() *Owner {
	return getTrackingContext().currentOwner
}

// setCurrentOwner sets the current owner for effect/memo creation.
// Returns the previous owner so it can be restored.
func setCurrentOwner(o *Owner) *Owner {
	ctx := getTrackingContext()
	old := ctx.currentOwner
	ctx.currentOwner = o
	return old
}

// enqueueEffect appends an effect to the pending queue in FIFO order.
// The caller has already set the effect's pending flag.
func enqueueEffect(e *Effect) {
	ctx := getTrackingContext()
	ctx.pendingEffects = append(ctx.pendingEffects, e)
}

// maybeFlush flushes the pending queue unless a batch is open.
// Called at the end of every accepted write.
func maybeFlush() {
	ctx := getTrackingContext()
	if ctx.batchDepth == 0 {
		flush(ctx)
	}
}

// flush drains the pending-effect queue. Effects run in FIFO order per
// pass; a pass may enqueue further effects, so draining repeats until the
// queue is empty. A flush already in progress is never re-entered.
func flush(ctx *trackingContext) {
	if ctx.flushing {
		return
	}
	ctx.flushing = true
	defer func() { ctx.flushing = false }()

	for len(ctx.pendingEffects) > 0 {
		pass := ctx.pendingEffects
		ctx.pendingEffects = nil
		stats.FlushPasses.Add(1)

		for _, e := range pass {
			if e.pending {
				e.run()
			}
		}
	}
}

// CurrentOwner returns the owner that newly created effects and memos
// would attach to, or nil outside any scope.
func CurrentOwner() *Owner {
	return getCurrentOwner()
}

// WithListener runs a function with the specified listener for tracking.
// This is used internally to set up dependency tracking and by tests.
func WithListener(l Listener, fn func()) {
	old := setCurrentListener(l)
	defer setCurrentListener(old)
	fn()
}

// WithOwner runs a function with the specified owner as the current owner.
// Effects and memos created inside fn belong to that owner.
func WithOwner(owner *Owner, fn func()) {
	old := setCurrentOwner(owner)
	defer setCurrentOwner(old)
	fn()
}

// WithScope runs fn with owner active, tracking suspended, and no active
// effect run. Signal reads inside fn register no edges, and OnCleanup calls
// attach to owner rather than to whatever effect happens to be executing.
// The reconcilers mount list entries through this, so each entry's cleanups
// live and die with the entry, not with the driving effect's runs.
func WithScope(owner *Owner, fn func()) {
	ctx := getTrackingContext()
	prevOwner := ctx.currentOwner
	prevListener := ctx.currentListener
	prevEffect := ctx.activeEffect
	ctx.currentOwner = owner
	ctx.currentListener = nil
	ctx.activeEffect = nil
	defer func() {
		ctx.currentOwner = prevOwner
		ctx.currentListener = prevListener
		ctx.activeEffect = prevEffect
	}()
	fn()
}
