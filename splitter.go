package divisive

import (
	"errors"
	"fmt"
)

// Splitter is the per-variant capability that computes splitpoints and
// materializes child clusters. One implementation exists per clustering
// variant (PDDP, iPDDP, dePDDP, kM-PDDP); the host picks one and the core
// never inspects which.
type Splitter interface {
	// Analyze computes n's projection, splitpoint and split criterion, and
	// grants split permission. If the node cannot be split it must leave
	// SplitCriterion nil and return an error wrapping ErrDegenerateSplit.
	Analyze(n *Node) error

	// Split partitions n's samples by comparing each projected coordinate to
	// n's stored splitpoint, creates exactly two new leaf children with
	// fresh strictly-increasing ids, analyzes each child, and marks n
	// internal. The stored splitpoint is honored as-is, which is what makes
	// an edited splitpoint take effect on re-splitting.
	Split(t *Tree, n *Node) error

	// Better reports whether leaf a should be split before leaf b. The
	// ordering must be fixed for fixed node state: recomputation has to be
	// reproducible.
	Better(a, b *Node) bool
}

// dataSplitter carries what every shipped variant needs: the flattened
// dataset and the smallest leaf worth splitting.
type dataSplitter struct {
	data           []float64
	n, dims        int
	minSampleSplit int
}

// flattenData copies a row-per-point dataset into flat row-major form,
// validating that every point has the same dimensionality.
func flattenData(data [][]float64) (flat []float64, n, dims int, err error) {
	n = len(data)
	if n == 0 {
		return nil, 0, 0, fmt.Errorf("divisive: empty dataset")
	}
	dims = len(data[0])
	if dims == 0 {
		return nil, 0, 0, fmt.Errorf("divisive: zero-dimensional dataset")
	}
	flat = make([]float64, n*dims)
	for i, row := range data {
		if len(row) != dims {
			return nil, 0, 0, fmt.Errorf("divisive: point %d has %d dims, want %d", i, len(row), dims)
		}
		copy(flat[i*dims:], row)
	}
	return flat, n, dims, nil
}

// project runs the shared pre-analysis: enforce the minimum leaf size and
// compute the node's principal projection. The returned error wraps
// ErrDegenerateSplit.
func (d *dataSplitter) project(n *Node) ([]float64, error) {
	if len(n.Samples) < d.minSampleSplit {
		return nil, fmt.Errorf("divisive: node %d has %d samples, below MinSampleSplit %d: %w",
			n.ID, len(n.Samples), d.minSampleSplit, ErrDegenerateSplit)
	}
	proj, ok := principalProjection(d.data, d.dims, n.Samples)
	if !ok {
		return nil, fmt.Errorf("divisive: node %d has no principal direction: %w", n.ID, ErrDegenerateSplit)
	}
	return proj, nil
}

// splitNode is the split body shared by every variant: analyze on demand,
// partition by the stored splitpoint, create and analyze the two children.
// analyze errors on children are swallowed; a degenerate child simply keeps a
// nil criterion and is never selected.
func splitNode(t *Tree, n *Node, analyze func(*Node) error) error {
	if n.Splitpoint == nil || n.Projection == nil {
		if err := analyze(n); err != nil {
			return err
		}
	}

	var left, right []int
	for i, s := range n.Samples {
		if n.Projection[i] < *n.Splitpoint {
			left = append(left, s)
		} else {
			right = append(right, s)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return fmt.Errorf("divisive: splitpoint %v leaves one side empty: %w",
			*n.Splitpoint, ErrDegenerateSplit)
	}

	l, err := t.AddChild(n.ID, left)
	if err != nil {
		return err
	}
	r, err := t.AddChild(n.ID, right)
	if err != nil {
		return err
	}
	if err := analyze(l); err != nil && !errors.Is(err, ErrDegenerateSplit) {
		return err
	}
	if err := analyze(r); err != nil && !errors.Is(err, ErrDegenerateSplit) {
		return err
	}

	n.SplitPermission = false
	return nil
}
