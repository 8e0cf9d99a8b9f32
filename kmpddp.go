package divisive

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// kmMaxIterations bounds the 2-means refinement per node.
const kmMaxIterations = 64

// KMPDDPConfig controls the kM-PDDP splitter.
type KMPDDPConfig struct {
	// MinSampleSplit is the smallest leaf the splitter will attempt to
	// split. Must be >= 2. Default: 5.
	MinSampleSplit int
}

// DefaultKMPDDPConfig returns a KMPDDPConfig with reasonable defaults.
func DefaultKMPDDPConfig() KMPDDPConfig {
	return KMPDDPConfig{MinSampleSplit: 5}
}

// KMPDDP implements kM-PDDP: a 2-means clustering of each node's principal
// projection places the splitpoint at the midpoint of the converged centers.
// Centers are initialized at the projection's extremes, so the result is
// fully deterministic. The node with the largest total scatter is split
// first.
type KMPDDP struct {
	dataSplitter
}

// NewKMPDDP builds a kM-PDDP splitter over the dataset.
func NewKMPDDP(data [][]float64, cfg KMPDDPConfig) (*KMPDDP, error) {
	if cfg.MinSampleSplit == 0 {
		cfg.MinSampleSplit = DefaultKMPDDPConfig().MinSampleSplit
	}
	if cfg.MinSampleSplit < 2 {
		return nil, fmt.Errorf("divisive: MinSampleSplit must be >= 2, got %d", cfg.MinSampleSplit)
	}
	flat, n, dims, err := flattenData(data)
	if err != nil {
		return nil, err
	}
	return &KMPDDP{dataSplitter{data: flat, n: n, dims: dims, minSampleSplit: cfg.MinSampleSplit}}, nil
}

func (p *KMPDDP) Analyze(n *Node) error {
	proj, err := p.project(n)
	if err != nil {
		return err
	}

	c0, c1 := twoMeans1D(proj)
	if c0 == c1 {
		return fmt.Errorf("divisive: node %d 2-means centers coincide: %w", n.ID, ErrDegenerateSplit)
	}

	n.Projection = proj
	n.Splitpoint = fptr((c0 + c1) / 2)
	n.SplitCriterion = fptr(scatter(proj))
	n.SplitPermission = true
	return nil
}

func (p *KMPDDP) Split(t *Tree, n *Node) error { return splitNode(t, n, p.Analyze) }

// Better prefers the leaf with the larger scatter.
func (p *KMPDDP) Better(a, b *Node) bool { return *a.SplitCriterion > *b.SplitCriterion }

// twoMeans1D runs Lloyd's algorithm with k=2 on a 1-D sample, centers
// initialized at the extremes. Ties assign to the lower center.
func twoMeans1D(xs []float64) (c0, c1 float64) {
	c0, c1 = floats.Min(xs), floats.Max(xs)
	for iter := 0; iter < kmMaxIterations; iter++ {
		var sum0, sum1 float64
		var n0, n1 int
		for _, x := range xs {
			if x-c0 <= c1-x {
				sum0 += x
				n0++
			} else {
				sum1 += x
				n1++
			}
		}
		if n0 == 0 || n1 == 0 {
			return c0, c1
		}
		next0, next1 := sum0/float64(n0), sum1/float64(n1)
		if next0 == c0 && next1 == c1 {
			break
		}
		c0, c1 = next0, next1
	}
	return c0, c1
}
