package divisive

import (
	"fmt"
	"sort"
)

// IPDDPConfig controls the iPDDP splitter.
type IPDDPConfig struct {
	// MinSampleSplit is the smallest leaf the splitter will attempt to
	// split. Must be >= 2. Default: 5.
	MinSampleSplit int
}

// DefaultIPDDPConfig returns an IPDDPConfig with reasonable defaults.
func DefaultIPDDPConfig() IPDDPConfig {
	return IPDDPConfig{MinSampleSplit: 5}
}

// IPDDP implements incremental PDDP: each node is split at the midpoint of
// the largest gap in its sorted principal projection, and the node with the
// widest gap is split first.
type IPDDP struct {
	dataSplitter
}

// NewIPDDP builds an iPDDP splitter over the dataset.
func NewIPDDP(data [][]float64, cfg IPDDPConfig) (*IPDDP, error) {
	if cfg.MinSampleSplit == 0 {
		cfg.MinSampleSplit = DefaultIPDDPConfig().MinSampleSplit
	}
	if cfg.MinSampleSplit < 2 {
		return nil, fmt.Errorf("divisive: MinSampleSplit must be >= 2, got %d", cfg.MinSampleSplit)
	}
	flat, n, dims, err := flattenData(data)
	if err != nil {
		return nil, err
	}
	return &IPDDP{dataSplitter{data: flat, n: n, dims: dims, minSampleSplit: cfg.MinSampleSplit}}, nil
}

func (p *IPDDP) Analyze(n *Node) error {
	proj, err := p.project(n)
	if err != nil {
		return err
	}

	sorted := append([]float64(nil), proj...)
	sort.Float64s(sorted)

	gap, mid := 0.0, 0.0
	for i := 1; i < len(sorted); i++ {
		if g := sorted[i] - sorted[i-1]; g > gap {
			gap = g
			mid = sorted[i-1] + g/2
		}
	}
	if gap == 0 {
		return fmt.Errorf("divisive: node %d projection has no gap: %w", n.ID, ErrDegenerateSplit)
	}

	n.Projection = proj
	n.Splitpoint = fptr(mid)
	n.SplitCriterion = fptr(gap)
	n.SplitPermission = true
	return nil
}

func (p *IPDDP) Split(t *Tree, n *Node) error { return splitNode(t, n, p.Analyze) }

// Better prefers the leaf with the wider gap.
func (p *IPDDP) Better(a, b *Node) bool { return *a.SplitCriterion > *b.SplitCriterion }
