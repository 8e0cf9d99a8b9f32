// Package divisive implements interactive splitpoint editing for divisive
// (top-down, one-split-at-a-time) hierarchical clustering.
//
// A divisive clustering is a binary tree: each internal node records a split
// decision (a scalar splitpoint on a 1-D projection of the node's samples)
// and the leaves are the current clusters. The package lets a host take such
// a tree, move one splitpoint, and re-derive every clustering decision
// downstream of the edit while preserving everything upstream, producing a
// tree consistent with one built from scratch with the new splitpoint.
//
// Basic usage:
//
//	splitter, err := divisive.NewDePDDP(data, divisive.DefaultDePDDPConfig())
//	c, err := divisive.NewClustering(splitter, len(data), 6)
//	err = c.PartialPredict()                           // initial full run
//	err = c.RecalculateAfterSplitpointChange(0, 1.25)  // edit split 0
//	labels := c.Labels()                               // per-sample clusters
//
// # Splitter variants
//
// Four splitters are provided, all projecting onto a node's first principal
// direction and differing in how the splitpoint is chosen and which leaf is
// split next:
//
//	divisive.NewPDDP    // split at the projection mean, largest scatter first
//	divisive.NewIPDDP   // split at the largest projection gap, widest gap first
//	divisive.NewDePDDP  // split at the deepest density minimum, lowest density first
//	divisive.NewKMPDDP  // split between 2-means centers, largest scatter first
//
// A host with its own per-split algorithm implements [Splitter] instead; the
// recomputation engine never inspects which variant it drives.
//
// All operations are single-threaded and run to completion; a concurrent
// host must serialize edits to the same [Clustering].
package divisive
