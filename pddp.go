package divisive

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// PDDPConfig controls the plain PDDP splitter.
type PDDPConfig struct {
	// MinSampleSplit is the smallest leaf the splitter will attempt to
	// split. Must be >= 2. Default: 5.
	MinSampleSplit int
}

// DefaultPDDPConfig returns a PDDPConfig with reasonable defaults.
func DefaultPDDPConfig() PDDPConfig {
	return PDDPConfig{MinSampleSplit: 5}
}

// PDDP implements principal direction divisive partitioning: each node is
// split at the mean of its projection onto its first principal direction,
// and the node with the largest total scatter is split first.
type PDDP struct {
	dataSplitter
}

// NewPDDP builds a PDDP splitter over the dataset. Each element of data is
// one point; all points must share a dimensionality.
func NewPDDP(data [][]float64, cfg PDDPConfig) (*PDDP, error) {
	if cfg.MinSampleSplit == 0 {
		cfg.MinSampleSplit = DefaultPDDPConfig().MinSampleSplit
	}
	if cfg.MinSampleSplit < 2 {
		return nil, fmt.Errorf("divisive: MinSampleSplit must be >= 2, got %d", cfg.MinSampleSplit)
	}
	flat, n, dims, err := flattenData(data)
	if err != nil {
		return nil, err
	}
	return &PDDP{dataSplitter{data: flat, n: n, dims: dims, minSampleSplit: cfg.MinSampleSplit}}, nil
}

func (p *PDDP) Analyze(n *Node) error {
	proj, err := p.project(n)
	if err != nil {
		return err
	}
	n.Projection = proj
	n.Splitpoint = fptr(stat.Mean(proj, nil))
	n.SplitCriterion = fptr(scatter(proj))
	n.SplitPermission = true
	return nil
}

func (p *PDDP) Split(t *Tree, n *Node) error { return splitNode(t, n, p.Analyze) }

// Better prefers the leaf with the larger scatter.
func (p *PDDP) Better(a, b *Node) bool { return *a.SplitCriterion > *b.SplitCriterion }
