package divisive

import (
	"reflect"
	"testing"
)

// assertBlobLabels checks that the 10-sample two-blob dataset came out as
// exactly two clusters matching the blobs.
func assertBlobLabels(t *testing.T, labels []int) {
	t.Helper()
	if len(labels) != 10 {
		t.Fatalf("labels has %d entries, want 10", len(labels))
	}
	for i := 1; i < 5; i++ {
		if labels[i] != labels[0] {
			t.Errorf("sample %d not with blob A: labels = %v", i, labels)
		}
		if labels[5+i] != labels[5] {
			t.Errorf("sample %d not with blob B: labels = %v", 5+i, labels)
		}
	}
	if labels[0] == labels[5] {
		t.Errorf("blobs merged: labels = %v", labels)
	}
}

func TestPDDPSplitsTwoBlobs(t *testing.T) {
	s, err := NewPDDP(twoBlobs(), DefaultPDDPConfig())
	if err != nil {
		t.Fatalf("NewPDDP: %v", err)
	}
	c, err := NewClustering(s, 10, 2)
	if err != nil {
		t.Fatalf("NewClustering: %v", err)
	}
	if err := c.PartialPredict(); err != nil {
		t.Fatalf("PartialPredict: %v", err)
	}

	if got := len(c.Leaves()); got != 2 {
		t.Fatalf("leaves = %d, want 2", got)
	}
	assertBlobLabels(t, c.Labels())
}

func TestPDDPEditRegrowsWithFreshIDs(t *testing.T) {
	s, err := NewPDDP(twoBlobs(), DefaultPDDPConfig())
	if err != nil {
		t.Fatalf("NewPDDP: %v", err)
	}
	c, err := NewClustering(s, 10, 2)
	if err != nil {
		t.Fatalf("NewClustering: %v", err)
	}
	if err := c.PartialPredict(); err != nil {
		t.Fatalf("PartialPredict: %v", err)
	}

	// Nudge the root splitpoint. The blobs project around ±7 on the
	// principal direction (sign arbitrary), so 0.05 still separates them.
	if err := c.RecalculateAfterSplitpointChange(0, 0.05); err != nil {
		t.Fatalf("RecalculateAfterSplitpointChange: %v", err)
	}

	if got := nodeIDs(c.Tree); !reflect.DeepEqual(got, []int{0, 3, 4}) {
		t.Fatalf("tree after edit = %v, want [0 3 4]", got)
	}
	if got := *c.Tree.Root().Splitpoint; got != 0.05 {
		t.Errorf("root splitpoint = %v, want 0.05", got)
	}
	assertBlobLabels(t, c.Labels())
}

func TestPDDPConfigValidation(t *testing.T) {
	if _, err := NewPDDP(twoBlobs(), PDDPConfig{MinSampleSplit: 1}); err == nil {
		t.Error("MinSampleSplit 1 accepted")
	}
	if _, err := NewPDDP(nil, DefaultPDDPConfig()); err == nil {
		t.Error("empty dataset accepted")
	}
}

func TestPDDPMinSampleSplit(t *testing.T) {
	// With the whole dataset below the threshold, the root is unsplittable.
	s, err := NewPDDP(twoBlobs(), PDDPConfig{MinSampleSplit: 11})
	if err != nil {
		t.Fatalf("NewPDDP: %v", err)
	}
	c, err := NewClustering(s, 10, 4)
	if err != nil {
		t.Fatalf("NewClustering: %v", err)
	}
	if c.Tree.Root().SplitCriterion != nil {
		t.Error("root criterion set despite MinSampleSplit")
	}
	if err := c.PartialPredict(); err != nil {
		t.Fatalf("PartialPredict: %v", err)
	}
	if got := len(c.Leaves()); got != 1 {
		t.Errorf("leaves = %d, want 1", got)
	}
}
