package divisive

import (
	"fmt"
	"sort"
)

// Tree owns the hierarchical node collection: lookup by id, parent and leaf
// queries, and node removal. There is exactly one root (id 0); every non-root
// node has exactly one parent already present in the tree. Leaves are
// recomputed on demand, never cached.
type Tree struct {
	nodes  map[int]*Node
	order  []int // ids in creation order
	nextID int
	rootID int
}

// NewTree creates a tree containing only the root node (id 0) owning the
// given samples.
func NewTree(samples []int) *Tree {
	t := &Tree{
		nodes:  make(map[int]*Node),
		rootID: 0,
	}
	root := &Node{
		ID:       0,
		ParentID: -1,
		Samples:  samples,
		seq:      0,
	}
	t.nodes[0] = root
	t.order = append(t.order, 0)
	t.nextID = 1
	return t
}

// Len returns the number of nodes currently in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// Get returns the node with the given id, or nil if it is not present.
func (t *Tree) Get(id int) *Node { return t.nodes[id] }

// Root returns the root node.
func (t *Tree) Root() *Node { return t.nodes[t.rootID] }

// IsRoot reports whether id names the tree's root.
func (t *Tree) IsRoot(id int) bool { return id == t.rootID }

// Parent returns the parent of the node with the given id, or nil for the
// root or an absent id.
func (t *Tree) Parent(id int) *Node {
	n := t.nodes[id]
	if n == nil || n.ParentID < 0 {
		return nil
	}
	return t.nodes[n.ParentID]
}

// AddChild creates a new leaf under parentID owning the given samples.
// Ids increase strictly in creation order and are never reused, even after
// removals.
func (t *Tree) AddChild(parentID int, samples []int) (*Node, error) {
	parent := t.nodes[parentID]
	if parent == nil {
		return nil, fmt.Errorf("divisive: AddChild: no node with id %d", parentID)
	}
	n := &Node{
		ID:       t.nextID,
		ParentID: parentID,
		Samples:  samples,
		seq:      len(t.order),
	}
	t.nextID++
	t.nodes[n.ID] = n
	t.order = append(t.order, n.ID)
	parent.children = append(parent.children, n.ID)
	return n, nil
}

// Remove deletes the node with the given id and its entire subtree, detaching
// it from its parent's child list. Removing an id that is absent (or already
// removed) is a no-op, so repeated pruning passes are safe.
func (t *Tree) Remove(id int) {
	n := t.nodes[id]
	if n == nil || id == t.rootID {
		return
	}
	for _, c := range n.Children() {
		t.Remove(c)
	}
	if p := t.nodes[n.ParentID]; p != nil {
		for i, c := range p.children {
			if c == id {
				p.children = append(p.children[:i], p.children[i+1:]...)
				break
			}
		}
	}
	delete(t.nodes, id)
	for i, k := range t.order {
		if k == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// Leaves returns the current leaves in ascending id order. At any instant the
// leaves are exactly the current clusters.
func (t *Tree) Leaves() []*Node {
	var out []*Node
	for _, n := range t.nodes {
		if n.IsLeaf() {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// InternalNodeIDs returns the ids of all current non-leaf nodes in ascending
// order. These are the edit targets the presentation layer offers as splits.
func (t *Tree) InternalNodeIDs() []int {
	var out []int
	for id, n := range t.nodes {
		if !n.IsLeaf() {
			out = append(out, id)
		}
	}
	sort.Ints(out)
	return out
}

// idsByCreation returns a snapshot of the node ids currently present, ordered
// oldest to newest.
func (t *Tree) idsByCreation() []int {
	out := make([]int, len(t.order))
	copy(out, t.order)
	return out
}
