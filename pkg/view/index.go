package view

import (
	"github.com/filament-ui/filament/pkg/dom"
	"github.com/filament-ui/filament/pkg/reactive"
)

// IndexRenderFunc produces the output nodes for one positional slot. It
// runs exactly once per slot; value is a reactive cell carrying whatever
// the source list currently holds at this index, and index is static for
// the slot's lifetime.
type IndexRenderFunc[T any] func(value *reactive.Signal[T], index int) []*dom.Node

// indexSlot is one positional slot: its nodes never move, only the value
// cell's payload changes.
type indexSlot[T any] struct {
	value *reactive.Signal[T]
	nodes []*dom.Node
	scope *reactive.Owner
}

// indexView reconciles a list positionally: grow by appending, shrink by
// truncating from the tail.
type indexView[T any] struct {
	region *dom.Region
	render IndexRenderFunc[T]
	owner  *reactive.Owner

	slots []*indexSlot[T]

	fallback      func() []*dom.Node
	fallbackNodes []*dom.Node
	fallbackScope *reactive.Owner
}

// IndexOption configures an Index reconciler.
type IndexOption[T any] func(*indexView[T])

// WithFallback renders fallback nodes into the region whenever the source
// list is empty, and removes them when it is not.
func WithFallback[T any](fn func() []*dom.Node) IndexOption[T] {
	return func(v *indexView[T]) {
		v.fallback = fn
	}
}

// Index mounts a positional list reconciler into region. source is read
// inside an effect, so the region re-runs whenever any signal or memo
// read by source changes. render runs once per slot; an existing slot only
// ever sees its value cell updated. Slots never reorder, even when item
// identities shift between positions; that is Index's defining trade-off
// against For.
func Index[T any](region *dom.Region, source func() []T, render IndexRenderFunc[T], opts ...IndexOption[T]) *reactive.Effect {
	v := &indexView[T]{
		region: region,
		render: render,
		owner:  reactive.CurrentOwner(),
	}
	for _, opt := range opts {
		opt(v)
	}

	return reactive.NewEffect(func() reactive.Cleanup {
		items := source()
		v.apply(items)
		return nil
	})
}

// apply runs one positional reconciliation step.
func (v *indexView[T]) apply(items []T) {
	if !v.region.Attached() {
		return
	}

	if len(items) == 0 {
		v.clearSlots(0)
		v.showFallback()
		stats.reconcileSteps.Add(1)
		return
	}

	v.hideFallback()

	// Shrink: truncate from the tail, detaching each dropped slot.
	if len(items) < len(v.slots) {
		v.clearSlots(len(items))
	}

	// Update existing slots in place. The value cell's own equality check
	// makes an unchanged position a complete no-op.
	for i := 0; i < len(v.slots); i++ {
		v.slots[i].value.Set(items[i])
	}

	// Grow: append fresh slots at the end.
	for i := len(v.slots); i < len(items); i++ {
		slot := v.mount(items[i], i)
		v.slots = append(v.slots, slot)
		for _, n := range slot.nodes {
			v.region.InsertBefore(n, nil)
		}
	}

	stats.reconcileSteps.Add(1)
}

// mount creates one slot, running the render callback once under its own
// disposal scope with tracking suspended.
func (v *indexView[T]) mount(item T, index int) *indexSlot[T] {
	s := &indexSlot[T]{
		value: reactive.NewSignal(item),
		scope: reactive.NewOwner(v.owner),
	}
	reactive.WithScope(s.scope, func() {
		s.nodes = v.render(s.value, index)
	})
	return s
}

// clearSlots detaches and disposes every slot at position from or later.
func (v *indexView[T]) clearSlots(from int) {
	for _, s := range v.slots[from:] {
		for _, n := range s.nodes {
			v.region.Remove(n)
		}
		s.scope.Dispose()
	}
	v.slots = v.slots[:from]
}

// showFallback mounts the fallback nodes, if configured and not showing.
func (v *indexView[T]) showFallback() {
	if v.fallback == nil || v.fallbackScope != nil {
		return
	}
	v.fallbackScope = reactive.NewOwner(v.owner)
	reactive.WithScope(v.fallbackScope, func() {
		v.fallbackNodes = v.fallback()
	})
	for _, n := range v.fallbackNodes {
		v.region.InsertBefore(n, nil)
	}
}

// hideFallback removes the fallback nodes, if showing.
func (v *indexView[T]) hideFallback() {
	if v.fallbackScope == nil {
		return
	}
	for _, n := range v.fallbackNodes {
		v.region.Remove(n)
	}
	v.fallbackScope.Dispose()
	v.fallbackNodes = nil
	v.fallbackScope = nil
}
