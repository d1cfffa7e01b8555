package dom

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement Kind = iota // container node with children
	KindText                // leaf text node
	KindMarker              // zero-width region boundary
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindMarker:
		return "Marker"
	default:
		return "Unknown"
	}
}

// Node is a node in the live output tree. Node identity is pointer
// identity: a node keeps the same identity across moves, which is what the
// keyed reconciler's no-op reuse relies on.
type Node struct {
	kind Kind

	// Tag is the element tag name, for KindElement.
	Tag string

	// Text is the content, for KindText.
	Text string

	parent   *Node
	children []*Node
}

// NewElement creates a container node with the given tag and children.
func NewElement(tag string, children ...*Node) *Node {
	n := &Node{kind: KindElement, Tag: tag}
	for _, c := range children {
		n.Append(c)
	}
	return n
}

// NewText creates a leaf text node.
func NewText(text string) *Node {
	return &Node{kind: KindText, Text: text}
}

// NewMarker creates a zero-width boundary node.
func NewMarker() *Node {
	return &Node{kind: KindMarker}
}

// Kind returns the node's kind.
func (n *Node) Kind() Kind {
	return n.kind
}

// Parent returns the node's parent, or nil if detached.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's children in order. The returned slice is the
// node's own; callers must not mutate it.
func (n *Node) Children() []*Node {
	return n.children
}

// Detached reports whether the node has no parent.
func (n *Node) Detached() bool {
	return n.parent == nil
}

// indexOf returns the position of child under n, or -1.
func (n *Node) indexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// Append adds child as the last child of n, detaching it from any previous
// parent first.
func (n *Node) Append(child *Node) {
	n.InsertBefore(child, nil)
}

// InsertBefore inserts child immediately before ref under n. A nil ref
// appends. Moving a node already in the tree detaches it first, so a move
// is a single call. Inserting before a ref that is not a child of n is a
// no-op.
func (n *Node) InsertBefore(child, ref *Node) {
	if child == nil || child == ref {
		return
	}

	idx := len(n.children)
	if ref != nil {
		idx = n.indexOf(ref)
		if idx < 0 {
			return
		}
	}

	if child.parent != nil {
		// Removing an earlier sibling shifts the insertion point.
		if child.parent == n {
			old := n.indexOf(child)
			if old >= 0 && old < idx {
				idx--
			}
		}
		child.parent.Remove(child)
	}

	n.children = append(n.children, nil)
	copy(n.children[idx+1:], n.children[idx:])
	n.children[idx] = child
	child.parent = n
}

// Remove detaches child from n. Removing a node that is not a child is a
// no-op.
func (n *Node) Remove(child *Node) {
	idx := n.indexOf(child)
	if idx < 0 {
		return
	}
	n.children = append(n.children[:idx], n.children[idx+1:]...)
	child.parent = nil
}

// NextSibling returns the node immediately after n under its parent, or
// nil at the end or when detached.
func (n *Node) NextSibling() *Node {
	if n.parent == nil {
		return nil
	}
	idx := n.parent.indexOf(n)
	if idx < 0 || idx+1 >= len(n.parent.children) {
		return nil
	}
	return n.parent.children[idx+1]
}
