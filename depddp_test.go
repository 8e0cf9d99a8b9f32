package divisive

import (
	"errors"
	"math"
	"testing"
)

func TestDePDDPSplitsTwoBlobs(t *testing.T) {
	s, err := NewDePDDP(twoBlobs(), DefaultDePDDPConfig())
	if err != nil {
		t.Fatalf("NewDePDDP: %v", err)
	}
	c, err := NewClustering(s, 10, 2)
	if err != nil {
		t.Fatalf("NewClustering: %v", err)
	}
	if err := c.PartialPredict(); err != nil {
		t.Fatalf("PartialPredict: %v", err)
	}
	assertBlobLabels(t, c.Labels())
}

func TestDePDDPSplitpointAtDensityMinimum(t *testing.T) {
	s, err := NewDePDDP(twoBlobs(), DefaultDePDDPConfig())
	if err != nil {
		t.Fatalf("NewDePDDP: %v", err)
	}
	tree := NewTree(sampleRange(10))
	if err := s.Analyze(tree.Root()); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	root := tree.Root()

	// Two Gaussian bumps around ±7 on the projection: the density minimum
	// lies between them.
	if sp := math.Abs(*root.Splitpoint); sp > 3.0 {
		t.Errorf("splitpoint = %v, want between the blobs", *root.Splitpoint)
	}
	if root.SplitCriterion == nil {
		t.Fatal("criterion not set")
	}
}

func TestDePDDPUnimodalIsDegenerate(t *testing.T) {
	// A dense, centrally-peaked sample has a unimodal density estimate: no
	// interior local minimum, so the node must be reported unsplittable.
	var data [][]float64
	for i := 0; i < 200; i++ {
		u := -1 + 2*float64(i)/199
		data = append(data, []float64{u * math.Abs(u), 0})
	}
	s, err := NewDePDDP(data, DefaultDePDDPConfig())
	if err != nil {
		t.Fatalf("NewDePDDP: %v", err)
	}
	tree := NewTree(sampleRange(len(data)))
	err = s.Analyze(tree.Root())
	if !errors.Is(err, ErrDegenerateSplit) {
		t.Fatalf("error = %v, want ErrDegenerateSplit", err)
	}
	if tree.Root().SplitCriterion != nil {
		t.Error("criterion set on a degenerate node")
	}
}

func TestDePDDPBetterPrefersLowerDensity(t *testing.T) {
	s := &DePDDP{}
	a := &Node{ID: 1, SplitCriterion: fptr(0.01)}
	b := &Node{ID: 2, SplitCriterion: fptr(0.5)}
	if !s.Better(a, b) || s.Better(b, a) {
		t.Error("Better does not prefer the lower density minimum")
	}
}

func TestDePDDPConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     DePDDPConfig
		wantErr bool
	}{
		{name: "defaults", cfg: DefaultDePDDPConfig(), wantErr: false},
		{name: "zero fields filled", cfg: DePDDPConfig{}, wantErr: false},
		{name: "tiny MinSampleSplit", cfg: DePDDPConfig{MinSampleSplit: 1}, wantErr: true},
		{name: "bandwidth scale above 1", cfg: DePDDPConfig{BandwidthScale: 1.5}, wantErr: true},
		{name: "negative bandwidth scale", cfg: DePDDPConfig{BandwidthScale: -0.1}, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDePDDP(twoBlobs(), tc.cfg)
			if tc.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSilvermanBandwidth(t *testing.T) {
	if h := silvermanBandwidth([]float64{1, 1, 1, 1}); h != 0 {
		t.Errorf("bandwidth of constants = %v, want 0", h)
	}
	if h := silvermanBandwidth([]float64{-7, -7.1, -6.9, 7, 7.1, 6.9}); h <= 0 {
		t.Errorf("bandwidth = %v, want > 0", h)
	}
}

func TestGaussianKDEIntegratesToOne(t *testing.T) {
	xs := []float64{-7, -7.1, -6.9, 7, 7.1, 6.9}
	grid := make([]float64, 512)
	step := 40.0 / 511
	for i := range grid {
		grid[i] = -20 + float64(i)*step
	}
	density := gaussianKDE(xs, grid, 1.0)

	var integral float64
	for _, d := range density {
		integral += d * step
	}
	if math.Abs(integral-1) > 0.02 {
		t.Errorf("density integrates to %v, want ~1", integral)
	}
}
