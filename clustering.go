package divisive

import "fmt"

// Clustering is the externally-owned object the core mutates: the tree, the
// splitter variant chosen by the host, and the cluster-count budget.
//
// A Clustering is not safe for concurrent use. An edit
// ([Clustering.RecalculateAfterSplitpointChange]) must run to completion
// before the tree is exposed to any other consumer; concurrent edits to the
// same object must be serialized by the caller.
type Clustering struct {
	Tree     *Tree
	Splitter Splitter

	// MaxClusters is the stopping budget: recomputation halts once the leaf
	// count reaches it.
	MaxClusters int
}

// NewClustering builds a clustering over numSamples samples: a tree holding
// only the root (owning every sample), analyzed by the splitter so the first
// selection can see it. Run [Clustering.PartialPredict] to perform the
// initial full clustering.
//
// A degenerate root (too few or identical samples) is not an error; the
// resulting clustering simply never splits.
func NewClustering(s Splitter, numSamples, maxClusters int) (*Clustering, error) {
	if s == nil {
		return nil, fmt.Errorf("divisive: NewClustering: nil Splitter")
	}
	if numSamples < 1 {
		return nil, fmt.Errorf("divisive: NewClustering: numSamples must be >= 1, got %d", numSamples)
	}
	if maxClusters < 1 {
		return nil, fmt.Errorf("divisive: NewClustering: maxClusters must be >= 1, got %d", maxClusters)
	}

	samples := make([]int, numSamples)
	for i := range samples {
		samples[i] = i
	}
	c := &Clustering{
		Tree:        NewTree(samples),
		Splitter:    s,
		MaxClusters: maxClusters,
	}
	// Errors here can only be degenerate; Analyze left the criterion nil and
	// the selector will skip the root forever.
	_ = s.Analyze(c.Tree.Root())
	return c, nil
}

// Leaves returns the current clusters in ascending id order.
func (c *Clustering) Leaves() []*Node { return c.Tree.Leaves() }

// InternalNodeIDs returns the ids of the current internal nodes in ascending
// order; index i is the split index accepted by
// [Clustering.RecalculateAfterSplitpointChange].
func (c *Clustering) InternalNodeIDs() []int { return c.Tree.InternalNodeIDs() }

// NodeIDs returns the bookkeeping counter the presentation layer expects:
// one less than the number of nodes, i.e. the highest position in creation
// order. Derived from tree size, never stored.
func (c *Clustering) NodeIDs() int { return c.Tree.Len() - 1 }

// ClusterColor returns the presentation color counter: the number of current
// clusters plus one. Derived, never stored.
func (c *Clustering) ClusterColor() int { return len(c.Tree.Leaves()) + 1 }

// Labels assigns every sample the index of its leaf in ascending-id leaf
// order. Samples belonging to no leaf cannot occur: leaves partition the
// root's samples at every instant.
func (c *Clustering) Labels() []int {
	labels := make([]int, len(c.Tree.Root().Samples))
	for i, leaf := range c.Tree.Leaves() {
		for _, s := range leaf.Samples {
			labels[s] = i
		}
	}
	return labels
}
