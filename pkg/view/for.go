package view

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/filament-ui/filament/pkg/dom"
	"github.com/filament-ui/filament/pkg/reactive"
)

// RenderFunc produces the output nodes for one keyed item. It runs exactly
// once per key, when the key first appears; index is a reactive cell that
// is updated in place when the item's rank changes on later renders.
type RenderFunc[T any] func(item T, index *reactive.Signal[int]) []*dom.Node

// forEntry is the cache entry for one live key.
type forEntry struct {
	nodes []*dom.Node
	index *reactive.Signal[int]
	scope *reactive.Owner
}

// forView reconciles a keyed list into a region with minimal moves.
type forView[T any] struct {
	region *dom.Region
	keyFn  KeyFunc[T]
	render RenderFunc[T]

	// owner anchors per-entry scopes, so disposing the scope that created
	// the view tears down every entry.
	owner *reactive.Owner

	entries  map[uint64]*forEntry
	prevKeys []uint64
}

// For mounts a keyed list reconciler into region. source is read inside an
// effect, so the region re-reconciles whenever any signal or memo read by
// source changes. key derives each item's identity; render runs once per
// key under its own disposal scope.
//
// Returns the driving effect; disposing it stops reconciliation without
// clearing the region. Disposing the owner scope active at the For call
// tears down every entry's scope as well.
func For[T any](region *dom.Region, source func() []T, key KeyFunc[T], render RenderFunc[T]) *reactive.Effect {
	f := &forView[T]{
		region:  region,
		keyFn:   key,
		render:  render,
		owner:   reactive.CurrentOwner(),
		entries: make(map[uint64]*forEntry),
	}

	return reactive.NewEffect(func() reactive.Cleanup {
		items := source()
		f.apply(items)
		return nil
	})
}

// apply runs one reconciliation step against the new item sequence.
func (f *forView[T]) apply(items []T) {
	if !f.region.Attached() {
		// The surrounding tree detached the region; mutating now would
		// patch nodes nobody holds. Skip the whole step.
		return
	}

	// Derive the new key sequence, dropping duplicate keys.
	newKeys := make([]uint64, 0, len(items))
	newItems := make([]T, 0, len(items))
	seen := mapset.NewThreadUnsafeSet[uint64]()
	for i, item := range items {
		k := hashKey(f.keyFn(item, i))
		if !seen.Add(k) {
			continue
		}
		newKeys = append(newKeys, k)
		newItems = append(newItems, item)
	}

	// Evict entries whose key disappeared: detach nodes, dispose the
	// entry scope, delete the cache entry.
	for k, e := range f.entries {
		if seen.Contains(k) {
			continue
		}
		for _, n := range e.nodes {
			f.region.Remove(n)
		}
		e.scope.Dispose()
		delete(f.entries, k)
	}

	// Old rank per surviving key.
	oldRank := make(map[uint64]int, len(f.prevKeys))
	for i, k := range f.prevKeys {
		if _, live := f.entries[k]; live {
			oldRank[k] = i
		}
	}

	// Reuse or create an entry per new key. Surviving entries get their
	// index cell updated in place; the rendered nodes are never replaced
	// while the key persists.
	sources := make([]int, len(newKeys))
	for i, k := range newKeys {
		if e, ok := f.entries[k]; ok {
			e.index.Set(i)
			if r, defined := oldRank[k]; defined {
				sources[i] = r
			} else {
				sources[i] = -1
			}
			continue
		}
		sources[i] = -1
		f.entries[k] = f.mount(newItems[i], i)
	}

	if len(f.prevKeys) == 0 {
		// First render: append everything in forward order, no LIS.
		for _, k := range newKeys {
			for _, n := range f.entries[k].nodes {
				f.region.InsertBefore(n, nil)
			}
		}
		f.prevKeys = newKeys
		stats.reconcileSteps.Add(1)
		return
	}

	f.reconcile(newKeys, sources)
	f.prevKeys = newKeys
	stats.reconcileSteps.Add(1)
}

// mount runs the render callback once for a fresh key, under its own
// disposal scope and with tracking suspended, and returns the entry.
func (f *forView[T]) mount(item T, rank int) *forEntry {
	e := &forEntry{
		index: reactive.NewSignal(rank),
		scope: reactive.NewOwner(f.owner),
	}
	reactive.WithScope(e.scope, func() {
		e.nodes = f.render(item, e.index)
	})
	return e
}

// reconcile applies the minimal-move ordering pass.
//
// sources[i] is the old rank of the item now at new rank i, or -1 for a
// fresh key. Items whose old rank sits on the longest increasing
// subsequence are already in correct relative order and stay put; walking
// the new ranks backward, everything else is (re-)inserted in front of a
// moving anchor, which after each step becomes the first node of the item
// just processed. Entries with no physical nodes are skipped outright.
func (f *forView[T]) reconcile(newKeys []uint64, sources []int) {
	inLIS := longestIncreasingSubsequence(sources)

	anchor := f.region.End()
	for i := len(newKeys) - 1; i >= 0; i-- {
		e := f.entries[newKeys[i]]
		if len(e.nodes) == 0 {
			continue
		}

		if sources[i] < 0 || !inLIS[i] {
			// Fresh item, or an existing one outside the LIS: place its
			// run immediately before the anchor. For existing items this
			// is the move.
			for _, n := range e.nodes {
				f.region.InsertBefore(n, anchor)
			}
		}
		anchor = e.nodes[0]
	}
}
