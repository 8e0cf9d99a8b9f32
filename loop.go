package divisive

import "errors"

// PartialPredict resumes the divisive splitting loop from the tree's current
// state: repeatedly select the next eligible leaf and split it, until either
// the cluster budget is reached or no eligible leaf remains.
//
// The loop is strictly sequential, since each split changes the leaf set the
// next selection depends on, and performs exactly one split per iteration,
// which is the natural cancellation point for a host that wants to bound
// runtime.
//
// A degenerate split clears the node's criterion so it is never reselected,
// and does not count toward the budget (no children were created). Any other
// splitter error aborts and surfaces.
func (c *Clustering) PartialPredict() error {
	if c.Tree == nil || c.Tree.Len() == 0 {
		return ErrEmptyTree
	}

	leaves := c.Tree.Leaves()
	found := len(leaves)
	node := SelectKid(leaves, c.Splitter)

	for node != nil && found < c.MaxClusters {
		if err := c.Splitter.Split(c.Tree, node); err != nil {
			if !errors.Is(err, ErrDegenerateSplit) {
				return err
			}
			node.SplitCriterion = nil
		} else {
			found++
		}
		node = SelectKid(c.Tree.Leaves(), c.Splitter)
	}

	return nil
}
