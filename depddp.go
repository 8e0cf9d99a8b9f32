package divisive

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// kdeGridSize is the number of evaluation points for the density estimate.
const kdeGridSize = 256

// DePDDPConfig controls the density-based dePDDP splitter.
type DePDDPConfig struct {
	// MinSampleSplit is the smallest leaf the splitter will attempt to
	// split. Must be >= 2. Default: 5.
	MinSampleSplit int

	// BandwidthScale scales the Silverman rule-of-thumb bandwidth of the
	// kernel density estimate. Must be in (0, 1]. Default: 0.5.
	BandwidthScale float64
}

// DefaultDePDDPConfig returns a DePDDPConfig with reasonable defaults.
func DefaultDePDDPConfig() DePDDPConfig {
	return DePDDPConfig{MinSampleSplit: 5, BandwidthScale: 0.5}
}

// DePDDP implements density-enhanced PDDP: a Gaussian kernel density
// estimate is computed over each node's principal projection, the node is
// split at the deepest local density minimum, and the node whose minimum has
// the lowest density is split first.
type DePDDP struct {
	dataSplitter
	bandwidthScale float64
}

// NewDePDDP builds a dePDDP splitter over the dataset.
func NewDePDDP(data [][]float64, cfg DePDDPConfig) (*DePDDP, error) {
	if cfg.MinSampleSplit == 0 {
		cfg.MinSampleSplit = DefaultDePDDPConfig().MinSampleSplit
	}
	if cfg.BandwidthScale == 0 {
		cfg.BandwidthScale = DefaultDePDDPConfig().BandwidthScale
	}
	if cfg.MinSampleSplit < 2 {
		return nil, fmt.Errorf("divisive: MinSampleSplit must be >= 2, got %d", cfg.MinSampleSplit)
	}
	if cfg.BandwidthScale < 0 || cfg.BandwidthScale > 1 {
		return nil, fmt.Errorf("divisive: BandwidthScale must be in (0,1], got %f", cfg.BandwidthScale)
	}
	flat, n, dims, err := flattenData(data)
	if err != nil {
		return nil, err
	}
	return &DePDDP{
		dataSplitter:   dataSplitter{data: flat, n: n, dims: dims, minSampleSplit: cfg.MinSampleSplit},
		bandwidthScale: cfg.BandwidthScale,
	}, nil
}

func (p *DePDDP) Analyze(n *Node) error {
	proj, err := p.project(n)
	if err != nil {
		return err
	}

	h := p.bandwidthScale * silvermanBandwidth(proj)
	if h <= 0 {
		return fmt.Errorf("divisive: node %d has zero density bandwidth: %w", n.ID, ErrDegenerateSplit)
	}

	grid := make([]float64, kdeGridSize)
	floats.Span(grid, floats.Min(proj), floats.Max(proj))
	density := gaussianKDE(proj, grid, h)

	// Deepest interior local minimum of the estimate.
	sp, depth := 0.0, math.Inf(1)
	found := false
	for i := 1; i < len(density)-1; i++ {
		if density[i] < density[i-1] && density[i] <= density[i+1] && density[i] < depth {
			sp, depth = grid[i], density[i]
			found = true
		}
	}
	if !found {
		// Unimodal projection: nothing to separate.
		return fmt.Errorf("divisive: node %d density has no local minimum: %w", n.ID, ErrDegenerateSplit)
	}

	n.Projection = proj
	n.Splitpoint = fptr(sp)
	n.SplitCriterion = fptr(depth)
	n.SplitPermission = true
	return nil
}

func (p *DePDDP) Split(t *Tree, n *Node) error { return splitNode(t, n, p.Analyze) }

// Better prefers the leaf whose density minimum is lower.
func (p *DePDDP) Better(a, b *Node) bool { return *a.SplitCriterion < *b.SplitCriterion }

// silvermanBandwidth is Silverman's rule of thumb:
// 0.9 * min(sd, IQR/1.349) * n^(-1/5), falling back to sd alone when the
// interquartile range collapses.
func silvermanBandwidth(xs []float64) float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	sd := stat.StdDev(sorted, nil)
	iqr := stat.Quantile(0.75, stat.Empirical, sorted, nil) - stat.Quantile(0.25, stat.Empirical, sorted, nil)

	a := sd
	if iqr > 0 && iqr/1.349 < a {
		a = iqr / 1.349
	}
	if a <= 0 {
		return 0
	}
	return 0.9 * a * math.Pow(float64(len(xs)), -0.2)
}

// gaussianKDE evaluates a Gaussian kernel density estimate of xs with
// bandwidth h at each grid point.
func gaussianKDE(xs, grid []float64, h float64) []float64 {
	density := make([]float64, len(grid))
	norm := float64(len(xs)) * h
	for i, g := range grid {
		var d float64
		for _, x := range xs {
			d += distuv.UnitNormal.Prob((g - x) / h)
		}
		density[i] = d / norm
	}
	return density
}
