package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func childTags(n *Node) []string {
	out := make([]string, 0, len(n.Children()))
	for _, c := range n.Children() {
		switch c.Kind() {
		case KindText:
			out = append(out, c.Text)
		case KindMarker:
			out = append(out, "|")
		default:
			out = append(out, c.Tag)
		}
	}
	return out
}

func TestAppend(t *testing.T) {
	parent := NewElement("div")
	a := NewText("a")
	b := NewText("b")

	parent.Append(a)
	parent.Append(b)

	assert.Equal(t, []string{"a", "b"}, childTags(parent))
	assert.Same(t, parent, a.Parent())
	assert.False(t, a.Detached())
}

func TestNewElementWithChildren(t *testing.T) {
	n := NewElement("ul", NewElement("li"), NewElement("li"))
	assert.Equal(t, []string{"li", "li"}, childTags(n))
	assert.Equal(t, KindElement, n.Kind())
}

func TestInsertBefore(t *testing.T) {
	parent := NewElement("div")
	a := NewText("a")
	c := NewText("c")
	parent.Append(a)
	parent.Append(c)

	b := NewText("b")
	parent.InsertBefore(b, c)

	assert.Equal(t, []string{"a", "b", "c"}, childTags(parent))
}

func TestInsertBeforeNilRefAppends(t *testing.T) {
	parent := NewElement("div")
	parent.Append(NewText("a"))
	parent.InsertBefore(NewText("b"), nil)

	assert.Equal(t, []string{"a", "b"}, childTags(parent))
}

func TestInsertBeforeMovesWithinParent(t *testing.T) {
	parent := NewElement("div")
	a := NewText("a")
	b := NewText("b")
	c := NewText("c")
	parent.Append(a)
	parent.Append(b)
	parent.Append(c)

	// Move c in front of a: one call, no explicit detach.
	parent.InsertBefore(c, a)
	assert.Equal(t, []string{"c", "a", "b"}, childTags(parent))

	// Move a forward past b: the removal shifts the insertion point.
	parent.InsertBefore(b, a)
	assert.Equal(t, []string{"c", "b", "a"}, childTags(parent))
}

func TestInsertBeforeReparents(t *testing.T) {
	p1 := NewElement("div")
	p2 := NewElement("div")
	a := NewText("a")
	p1.Append(a)

	p2.Append(a)

	assert.Empty(t, p1.Children())
	assert.Same(t, p2, a.Parent())
}

func TestInsertBeforeSelfIsNoOp(t *testing.T) {
	parent := NewElement("div")
	a := NewText("a")
	parent.Append(a)

	parent.InsertBefore(a, a)
	assert.Equal(t, []string{"a"}, childTags(parent))
}

func TestInsertBeforeForeignRefIsNoOp(t *testing.T) {
	parent := NewElement("div")
	other := NewElement("div")
	ref := NewText("x")
	other.Append(ref)

	a := NewText("a")
	parent.InsertBefore(a, ref)

	assert.Empty(t, parent.Children())
	assert.True(t, a.Detached())
}

func TestRemove(t *testing.T) {
	parent := NewElement("div")
	a := NewText("a")
	b := NewText("b")
	parent.Append(a)
	parent.Append(b)

	parent.Remove(a)

	assert.Equal(t, []string{"b"}, childTags(parent))
	assert.True(t, a.Detached())

	// Removing again is harmless.
	parent.Remove(a)
	assert.Equal(t, []string{"b"}, childTags(parent))
}

func TestNextSibling(t *testing.T) {
	parent := NewElement("div")
	a := NewText("a")
	b := NewText("b")
	parent.Append(a)
	parent.Append(b)

	require.Same(t, b, a.NextSibling())
	assert.Nil(t, b.NextSibling())
	assert.Nil(t, NewText("loose").NextSibling())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Element", KindElement.String())
	assert.Equal(t, "Text", KindText.String())
	assert.Equal(t, "Marker", KindMarker.String())
}
