package view

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filament-ui/filament/pkg/dom"
	"github.com/filament-ui/filament/pkg/reactive"
)

// keyedHarness mounts a For over a string-list signal and records every
// render call.
type keyedHarness struct {
	parent  *dom.Node
	region  *dom.Region
	list    *reactive.Signal[[]string]
	effect  *reactive.Effect
	renders []string
	nodes   map[string]*dom.Node
}

func newKeyedHarness(t *testing.T, initial []string) *keyedHarness {
	t.Helper()

	h := &keyedHarness{
		parent: dom.NewElement("ul"),
		list:   reactive.NewSignal(initial),
		nodes:  map[string]*dom.Node{},
	}
	h.region = dom.NewRegion(h.parent)

	h.effect = For(h.region, h.list.Get,
		func(item string, _ int) string { return item },
		func(item string, index *reactive.Signal[int]) []*dom.Node {
			h.renders = append(h.renders, item)
			n := dom.NewElement("li", dom.NewText(item))
			h.nodes[item] = n
			return []*dom.Node{n}
		})
	t.Cleanup(h.effect.Dispose)
	return h
}

func (h *keyedHarness) texts() []string {
	var out []string
	for _, n := range h.region.Nodes() {
		out = append(out, n.Children()[0].Text)
	}
	return out
}

func TestForFirstRender(t *testing.T) {
	h := newKeyedHarness(t, []string{"a", "b", "c"})

	assert.Equal(t, []string{"a", "b", "c"}, h.texts())
	assert.Equal(t, []string{"a", "b", "c"}, h.renders)
}

func TestForReorderReusesNodes(t *testing.T) {
	h := newKeyedHarness(t, []string{"a", "b", "c", "d"})
	before := map[string]*dom.Node{}
	for k, n := range h.nodes {
		before[k] = n
	}

	h.list.Set([]string{"a", "c", "b", "d"})

	assert.Equal(t, []string{"a", "c", "b", "d"}, h.texts())
	// No re-render for surviving keys, and the exact same nodes.
	assert.Equal(t, []string{"a", "b", "c", "d"}, h.renders)
	for k, n := range h.nodes {
		assert.Same(t, before[k], n, "node for %q replaced", k)
	}
}

func TestForRemoveAndInsert(t *testing.T) {
	h := newKeyedHarness(t, []string{"a", "b", "c"})

	h.list.Set([]string{"b", "d", "c"})

	assert.Equal(t, []string{"b", "d", "c"}, h.texts())
	// Only the new key rendered.
	assert.Equal(t, []string{"a", "b", "c", "d"}, h.renders)
	assert.True(t, h.nodes["a"].Detached())
}

func TestForReverse(t *testing.T) {
	h := newKeyedHarness(t, []string{"a", "b", "c", "d", "e"})

	h.list.Set([]string{"e", "d", "c", "b", "a"})

	assert.Equal(t, []string{"e", "d", "c", "b", "a"}, h.texts())
	assert.Len(t, h.renders, 5)
}

func TestForClear(t *testing.T) {
	h := newKeyedHarness(t, []string{"a", "b"})

	h.list.Set(nil)

	assert.Empty(t, h.texts())
	assert.True(t, h.nodes["a"].Detached())
	assert.True(t, h.nodes["b"].Detached())

	// Repopulating renders fresh entries.
	h.list.Set([]string{"a"})
	assert.Equal(t, []string{"a"}, h.texts())
	assert.Equal(t, []string{"a", "b", "a"}, h.renders)
}

func TestForDuplicateKeysFirstWins(t *testing.T) {
	h := newKeyedHarness(t, []string{"a", "b", "a", "c"})

	assert.Equal(t, []string{"a", "b", "c"}, h.texts())
	assert.Equal(t, []string{"a", "b", "c"}, h.renders)
}

func TestForIndexSignalTracksRank(t *testing.T) {
	parent := dom.NewElement("ul")
	region := dom.NewRegion(parent)
	list := reactive.NewSignal([]string{"a", "b"})

	indexes := map[string]*reactive.Signal[int]{}
	e := For(region, list.Get,
		func(item string, _ int) string { return item },
		func(item string, index *reactive.Signal[int]) []*dom.Node {
			indexes[item] = index
			return []*dom.Node{dom.NewElement("li")}
		})
	defer e.Dispose()

	require.Equal(t, 0, indexes["a"].Peek())
	require.Equal(t, 1, indexes["b"].Peek())

	list.Set([]string{"b", "a"})

	assert.Equal(t, 1, indexes["a"].Peek())
	assert.Equal(t, 0, indexes["b"].Peek())
}

func TestForEvictionDisposesEntryScope(t *testing.T) {
	parent := dom.NewElement("ul")
	region := dom.NewRegion(parent)
	list := reactive.NewSignal([]string{"a", "b"})

	cleaned := map[string]int{}
	e := For(region, list.Get,
		func(item string, _ int) string { return item },
		func(item string, _ *reactive.Signal[int]) []*dom.Node {
			reactive.OnCleanup(func() { cleaned[item]++ })
			return []*dom.Node{dom.NewElement("li")}
		})
	defer e.Dispose()

	// A reorder must not tear down any entry.
	list.Set([]string{"b", "a"})
	assert.Empty(t, cleaned)

	list.Set([]string{"b"})
	assert.Equal(t, map[string]int{"a": 1}, cleaned)
}

func TestForOwnerDisposalTearsDownEntries(t *testing.T) {
	parent := dom.NewElement("ul")
	region := dom.NewRegion(parent)
	list := reactive.NewSignal([]string{"a", "b"})

	cleaned := 0
	reactive.CreateScope(func(dispose func()) struct{} {
		For(region, list.Get,
			func(item string, _ int) string { return item },
			func(item string, _ *reactive.Signal[int]) []*dom.Node {
				reactive.OnCleanup(func() { cleaned++ })
				return []*dom.Node{dom.NewElement("li")}
			})
		dispose()
		return struct{}{}
	})

	assert.Equal(t, 2, cleaned)
}

func TestForSkipsEmptyEntries(t *testing.T) {
	parent := dom.NewElement("ul")
	region := dom.NewRegion(parent)
	list := reactive.NewSignal([]string{"a", "", "b"})

	e := For(region, list.Get,
		func(item string, _ int) string { return "k" + item },
		func(item string, _ *reactive.Signal[int]) []*dom.Node {
			if item == "" {
				return nil
			}
			return []*dom.Node{dom.NewElement("li", dom.NewText(item))}
		})
	defer e.Dispose()

	require.Len(t, region.Nodes(), 2)

	// Reordering around the empty entry must not disturb anything.
	list.Set([]string{"b", "", "a"})

	var texts []string
	for _, n := range region.Nodes() {
		texts = append(texts, n.Children()[0].Text)
	}
	assert.Equal(t, []string{"b", "a"}, texts)
}

func TestForDetachedRegionIsNoOp(t *testing.T) {
	parent := dom.NewElement("ul")
	region := dom.NewRegion(parent)
	list := reactive.NewSignal([]string{"a"})

	renders := 0
	e := For(region, list.Get,
		func(item string, _ int) string { return item },
		func(item string, _ *reactive.Signal[int]) []*dom.Node {
			renders++
			return []*dom.Node{dom.NewElement("li")}
		})
	defer e.Dispose()

	parent.Remove(region.Start())
	parent.Remove(region.End())

	// Updates against a detached region must not render or panic.
	list.Set([]string{"a", "b"})
	assert.Equal(t, 1, renders)
}

func TestForMultiNodeEntries(t *testing.T) {
	parent := dom.NewElement("dl")
	region := dom.NewRegion(parent)
	list := reactive.NewSignal([]int{1, 2})

	e := For(region, list.Get,
		func(item, _ int) string { return strconv.Itoa(item) },
		func(item int, _ *reactive.Signal[int]) []*dom.Node {
			// Each entry contributes a dt/dd pair that must move together.
			return []*dom.Node{
				dom.NewElement("dt", dom.NewText(strconv.Itoa(item))),
				dom.NewElement("dd", dom.NewText("value")),
			}
		})
	defer e.Dispose()

	list.Set([]int{2, 1})

	var tags []string
	var texts []string
	for _, n := range region.Nodes() {
		tags = append(tags, n.Tag)
		texts = append(texts, n.Children()[0].Text)
	}
	assert.Equal(t, []string{"dt", "dd", "dt", "dd"}, tags)
	assert.Equal(t, []string{"2", "value", "1", "value"}, texts)
}

func TestForLargeShuffleKeepsIdentity(t *testing.T) {
	const n = 50
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}

	parent := dom.NewElement("ul")
	region := dom.NewRegion(parent)
	list := reactive.NewSignal(append([]int(nil), items...))

	nodes := map[int]*dom.Node{}
	renders := 0
	e := For(region, list.Get,
		func(item, _ int) string { return strconv.Itoa(item) },
		func(item int, _ *reactive.Signal[int]) []*dom.Node {
			renders++
			node := dom.NewElement("li", dom.NewText(strconv.Itoa(item)))
			nodes[item] = node
			return []*dom.Node{node}
		})
	defer e.Dispose()

	// Deterministic scramble.
	for i := range items {
		j := (i * 17) % n
		items[i], items[j] = items[j], items[i]
	}
	list.Set(append([]int(nil), items...))

	assert.Equal(t, n, renders)
	got := region.Nodes()
	require.Len(t, got, n)
	for i, item := range items {
		assert.Same(t, nodes[item], got[i], "position %d", i)
	}
}
