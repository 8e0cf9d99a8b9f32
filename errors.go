package divisive

import "errors"

var (
	// ErrInvalidSplitIndex is returned when a split index is outside the
	// range of the tree's current internal nodes. The tree is not modified.
	ErrInvalidSplitIndex = errors.New("divisive: split index out of range")

	// ErrDegenerateSplit is returned by a Splitter when a node cannot be
	// split (too few samples, identical points, or a splitpoint that leaves
	// one side empty). It is not fatal: the node's split criterion is cleared
	// so the selector never revisits it, and recomputation continues.
	ErrDegenerateSplit = errors.New("divisive: degenerate split")

	// ErrEmptyTree is returned when an operation finds a tree with no nodes.
	// This violates the lifecycle invariants and is surfaced rather than
	// silently recovered.
	ErrEmptyTree = errors.New("divisive: empty tree")
)
