package reactive

// disposable is anything an Owner can tear down: effects, memos, and
// nested owners.
type disposable interface {
	dispose()
}

// Owner is a disposal scope. Effects and memos created while an owner is
// active belong to it, as do nested scopes; disposing the owner tears down
// the whole subtree and runs registered cleanups. Every subscriber belongs
// to exactly one owner.
//
// Owners form a hierarchy via CreateScope. Disposal is depth-first: owned
// items go down in registration order (recursing into nested scopes), then
// the owner's own cleanups run in registration order.
type Owner struct {
	id uint64

	// parent is the parent Owner, nil for a root scope.
	parent *Owner

	// owned are the effects, memos, and child scopes in creation order.
	owned []disposable

	// cleanups are functions registered via OnCleanup, run at disposal in
	// registration order.
	cleanups []func()

	// disposed owners refuse new registrations and are never re-entered.
	disposed bool
}

// NewOwner creates a new Owner under the given parent.
// The new owner is registered with the parent so disposing the parent
// disposes it. Pass nil for a root owner.
func NewOwner(parent *Owner) *Owner {
	o := &Owner{
		id:     nextID(),
		parent: parent,
	}

	if parent != nil {
		parent.register(o)
	}

	return o
}

// ID returns the unique identifier for this owner.
func (o *Owner) ID() uint64 {
	return o.id
}

// Parent returns the parent owner, or nil for a root.
func (o *Owner) Parent() *Owner {
	return o.parent
}

// IsDisposed reports whether this owner has been disposed.
func (o *Owner) IsDisposed() bool {
	return o.disposed
}

// register adds an item to this owner's disposal list.
func (o *Owner) register(d disposable) {
	if o.disposed {
		// Late arrivals into a dead scope die immediately.
		d.dispose()
		return
	}
	o.owned = append(o.owned, d)
}

// OnCleanup registers a cleanup function to run when this owner is disposed.
// If the owner is already disposed, the cleanup runs immediately.
func (o *Owner) OnCleanup(fn func()) {
	if o.disposed {
		fn()
		return
	}
	o.cleanups = append(o.cleanups, fn)
}

// ownedCount returns the number of live owned items. Used by the inspector.
func (o *Owner) ownedCount() int {
	return len(o.owned)
}

// disposeFrame is one level of the iterative disposal walk.
type disposeFrame struct {
	owner *Owner
	next  int
}

// Dispose tears down this owner: every owned effect, memo, and nested
// scope in registration order, then this owner's cleanups in registration
// order. Disposal is idempotent, synchronous, and total.
//
// The walk is iterative with an explicit frame stack, so disposing a
// deeply nested scope tree cannot exhaust the goroutine stack.
func (o *Owner) Dispose() {
	o.dispose()
}

func (o *Owner) dispose() {
	if o.disposed {
		return
	}
	o.disposed = true
	stack := []disposeFrame{{owner: o}}

	for len(stack) > 0 {
		f := &stack[len(stack)-1]

		if f.next < len(f.owner.owned) {
			item := f.owner.owned[f.next]
			f.next++

			if child, ok := item.(*Owner); ok {
				if child.disposed {
					continue
				}
				child.disposed = true
				stack = append(stack, disposeFrame{owner: child})
				continue
			}
			item.dispose()
			continue
		}

		// Children done; run this frame's cleanups and pop.
		done := f.owner
		done.owned = nil
		cleanups := done.cleanups
		done.cleanups = nil
		for _, fn := range cleanups {
			fn()
		}
		stack = stack[:len(stack)-1]
	}
}

// CreateScope pushes a new owner, runs fn with a dispose callback bound to
// that owner, pops the owner, and returns fn's result. The scope nests
// under the currently active owner, so disposing an ancestor tears this
// scope down too.
//
//	stop := CreateScope(func(dispose func()) func() {
//	    NewEffect(func() Cleanup { ... })
//	    return dispose
//	})
func CreateScope[T any](fn func(dispose func()) T) T {
	o := NewOwner(getCurrentOwner())

	prev := setCurrentOwner(o)
	defer setCurrentOwner(prev)

	return fn(o.Dispose)
}

// OnCleanup registers fn against the active effect run, if one is
// executing, otherwise against the currently active owner. The cleanup
// runs at that scope's next teardown: before the effect's next re-run or
// at owner disposal. With no active scope the call is a no-op.
func OnCleanup(fn func()) {
	ctx := getTrackingContext()
	if ctx.activeEffect != nil {
		ctx.activeEffect.cleanups = append(ctx.activeEffect.cleanups, fn)
		return
	}
	if ctx.currentOwner != nil {
		ctx.currentOwner.OnCleanup(fn)
	}
}
