package divisive

// SelectKid picks the next leaf to split: among leaves with a known split
// criterion and split permission, the one the splitter ranks best. Returns
// nil when no leaf qualifies. Pure selection, no mutation.
//
// Leaves are visited in ascending id order and the best is replaced only on a
// strict improvement, so ties deterministically keep the lowest id.
func SelectKid(leaves []*Node, s Splitter) *Node {
	var best *Node
	for _, leaf := range leaves {
		if !leaf.Eligible() {
			continue
		}
		if best == nil || s.Better(leaf, best) {
			best = leaf
		}
	}
	return best
}
