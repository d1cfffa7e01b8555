package dom

// Region is the span between two marker nodes under one parent. A
// reconciler bound to a region only ever inserts before or removes between
// the markers, never outside them; that is the whole contract between the
// reconcilers and the surrounding tree layer.
type Region struct {
	start *Node
	end   *Node
}

// NewRegion appends a fresh start/end marker pair to parent and returns
// the region between them.
func NewRegion(parent *Node) *Region {
	r := &Region{
		start: NewMarker(),
		end:   NewMarker(),
	}
	parent.Append(r.start)
	parent.Append(r.end)
	return r
}

// Start returns the opening boundary marker.
func (r *Region) Start() *Node {
	return r.start
}

// End returns the closing boundary marker.
func (r *Region) End() *Node {
	return r.end
}

// Parent returns the node holding the region, or nil once the markers have
// been detached.
func (r *Region) Parent() *Node {
	return r.end.parent
}

// Attached reports whether the region still sits in a parent. Reconcilers
// check this before mutating: a detached region makes the update a no-op,
// since tree detachment is a normal lifecycle event, not an error.
func (r *Region) Attached() bool {
	return r.end.parent != nil && r.start.parent == r.end.parent
}

// InsertBefore inserts node immediately before anchor inside the region.
// A nil anchor means the end marker.
func (r *Region) InsertBefore(node, anchor *Node) {
	if anchor == nil {
		anchor = r.end
	}
	r.end.parent.InsertBefore(node, anchor)
}

// Remove detaches node from the region's parent.
func (r *Region) Remove(node *Node) {
	if r.end.parent == nil {
		return
	}
	r.end.parent.Remove(node)
}

// Nodes returns the nodes currently between the markers, in order.
func (r *Region) Nodes() []*Node {
	parent := r.end.parent
	if parent == nil {
		return nil
	}

	var out []*Node
	collecting := false
	for _, c := range parent.children {
		switch c {
		case r.start:
			collecting = true
		case r.end:
			return out
		default:
			if collecting {
				out = append(out, c)
			}
		}
	}
	return out
}
