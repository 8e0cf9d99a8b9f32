package divisive

import "fmt"

// RecalculateAfterSplitpointChange applies a user edit: the splitIndex-th
// internal node (ascending id order) gets newSplitpoint as its splitpoint,
// every clustering decision downstream of the edit is discarded, and the
// splitting loop resumes until a stopping criterion fires again.
//
// A tree that never split beyond the root has no internal nodes; the root is
// then treated as the sole internal node, so splitIndex 0 edits it.
//
// The split index is validated before anything is mutated: on
// ErrInvalidSplitIndex the tree is untouched.
func (c *Clustering) RecalculateAfterSplitpointChange(splitIndex int, newSplitpoint float64) error {
	if c.Tree == nil || c.Tree.Len() == 0 {
		return ErrEmptyTree
	}

	internal := c.Tree.InternalNodeIDs()
	if len(internal) == 0 {
		internal = []int{c.Tree.rootID}
	}
	if splitIndex < 0 || splitIndex >= len(internal) {
		return fmt.Errorf("divisive: split index %d outside [0,%d): %w",
			splitIndex, len(internal), ErrInvalidSplitIndex)
	}

	edited := c.Tree.Get(internal[splitIndex])
	editedIsRoot := c.Tree.IsRoot(edited.ID)

	// Remove every node created after the edited one, newest first so a
	// child is always gone before any ancestor decision affecting it is
	// revisited. The oldest node is never removed. A later node survives
	// only when it shares the edited node's direct parent.
	ids := c.Tree.idsByCreation()
	for i := len(ids) - 1; i >= 1; i-- {
		k := c.Tree.Get(ids[i])
		if k == nil || k.seq <= edited.seq {
			continue
		}
		if editedIsRoot || k.ParentID != edited.ParentID {
			c.Tree.Remove(k.ID)
		}
	}

	// Re-open every surviving leaf that has a known criterion. Leaves frozen
	// by an earlier stopping condition, and internal nodes the pruning just
	// turned back into leaves, must all be reconsidered.
	for _, leaf := range c.Tree.Leaves() {
		if leaf.SplitCriterion != nil {
			leaf.SplitPermission = true
		}
	}

	sp := newSplitpoint
	edited.Splitpoint = &sp

	return c.PartialPredict()
}
