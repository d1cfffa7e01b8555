package reactive

// Memo is a cached computation that automatically tracks its dependencies.
// When any dependency changes, the memo is marked dirty and the mark
// propagates to the memo's own subscribers; the value itself recomputes
// lazily on the next read.
//
// Memos are lazy: a memo whose sources change but which is never read
// afterward never recomputes. If multiple sources change before a read,
// the memo recomputes once.
//
// Memos can be subscribed to, behaving like signals themselves.
// This allows building chains of derived values.
type Memo[T any] struct {
	base signalBase

	// compute is the function that computes the memo's value.
	compute func() T

	// value is the cached computed value.
	value T

	// dirty is true when a source changed since the last computation.
	dirty bool

	// initialized is false until the first read runs the function.
	initialized bool

	// disposed memos never recompute; reads return the last cached value.
	disposed bool

	// sources are the signals/memos this memo currently depends on.
	// Rebuilt on every recompute: stale edges are cut, then reads during
	// the computation re-attach fresh ones.
	sources []*signalBase

	// computing guards against recursive self-reads.
	computing bool

	// owner is the Owner that owns this memo.
	owner *Owner
}

// NewMemo creates a new memo with the given computation function.
// The computation is not run immediately; it runs lazily on first Get().
// The memo belongs to the currently active owner, if any, and is disposed
// with it.
func NewMemo[T any](compute func() T) *Memo[T] {
	m := &Memo[T]{
		base: signalBase{
			id: nextID(),
		},
		compute: compute,
		dirty:   true,
		owner:   getCurrentOwner(),
	}

	if m.owner != nil {
		m.owner.register(m)
	}

	return m
}

// Get returns the memo's value, recomputing if necessary.
// Creates a dependency on this memo for the current listener.
// A disposed memo returns its last cached value forever.
func (m *Memo[T]) Get() T {
	m.base.track()

	if !m.disposed && (m.dirty || !m.initialized) {
		m.recompute()
	}
	return m.value
}

// Peek returns the memo's value without subscribing.
// Still recomputes if the cached value is stale.
func (m *Memo[T]) Peek() T {
	if !m.disposed && (m.dirty || !m.initialized) {
		m.recompute()
	}
	return m.value
}

// MarkDirty invalidates the memo and propagates the mark to its own
// subscribers, so a dependent effect any number of levels away still gets
// enqueued. An already-dirty memo is not re-visited; diamond-shaped graphs
// propagate each write exactly once per node.
// Implements the Listener interface.
func (m *Memo[T]) MarkDirty() {
	if m.disposed || m.dirty {
		return
	}
	m.dirty = true
	m.base.notifySubscribers()
}

// ID returns the unique identifier for this memo.
// Implements the Listener interface.
func (m *Memo[T]) ID() uint64 {
	return m.base.id
}

// addSource adds a source dependency.
// Implements the sourceTracker interface.
func (m *Memo[T]) addSource(source *signalBase) {
	for _, s := range m.sources {
		if s == source {
			return
		}
	}
	m.sources = append(m.sources, source)
}

// recompute runs the computation and caches the result.
func (m *Memo[T]) recompute() {
	if m.computing {
		// Circular dependency; keep the current cached value.
		return
	}
	m.computing = true
	defer func() { m.computing = false }()

	m.detachSources()

	old := setCurrentListener(m)
	defer setCurrentListener(old)

	stats.MemoRecomputes.Add(1)
	m.value = m.compute()
	m.dirty = false
	m.initialized = true
}

// detachSources cuts every edge to a tracked source.
func (m *Memo[T]) detachSources() {
	for _, source := range m.sources {
		source.unsubscribe(m)
	}
	m.sources = m.sources[:0]
}

// dispose cuts all source edges and freezes the cached value.
// Reading a disposed memo stays legal and returns the last value; this
// avoids stale closures blowing up long after their scope is gone.
func (m *Memo[T]) dispose() {
	if m.disposed {
		return
	}
	m.disposed = true
	m.detachSources()
}

// Ensure Memo implements sourceTracker.
var _ sourceTracker = (*Memo[int])(nil)
