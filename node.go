package divisive

// Node is a vertex of the clustering tree. Leaves are the current clusters;
// internal nodes record historical split decisions.
type Node struct {
	// ID is assigned monotonically at creation time and never reused.
	ID int

	// ParentID is the id of the owning node, or -1 for the root.
	ParentID int

	// Samples holds the indices of the input samples belonging to this node.
	// The root owns every sample; a split partitions them between the two
	// children.
	Samples []int

	// Projection is the 1-D projection of Samples onto the node's principal
	// direction, aligned index-for-index with Samples. Set by
	// [Splitter.Analyze]; nil until the node has been analyzed.
	Projection []float64

	// Splitpoint is the scalar threshold on Projection used to route samples
	// to the two children. Nil until set by Analyze (or overwritten by an
	// edit).
	Splitpoint *float64

	// SplitCriterion ranks this node among split candidates. Nil means the
	// node can never be split and the selector must skip it permanently.
	SplitCriterion *float64

	// SplitPermission gates splitting: a leaf is eligible only when it has a
	// non-nil SplitCriterion and SplitPermission is true.
	SplitPermission bool

	// seq is the node's position in creation order. With a monotonic id
	// allocator it tracks ID, but pruning compares seq so correctness does
	// not hinge on how ids are allocated.
	seq int

	children []int
}

// IsLeaf reports whether the node currently has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// Children returns the ids of the node's children in creation order.
func (n *Node) Children() []int {
	out := make([]int, len(n.children))
	copy(out, n.children)
	return out
}

// Eligible reports whether the node qualifies for selection as the next
// split: a known split criterion and permission granted.
func (n *Node) Eligible() bool {
	return n.SplitCriterion != nil && n.SplitPermission
}
