package outline

import "github.com/dgallion1/docscope/internal/docindex"

// CollectChildren gathers the descendants of the requested ids, down to
// relDepth levels below the shallowest requested id. Overlapping
// requests (a section plus one of its own descendants) are collected
// once: a shared seen-set spans all roots. The result is ordered by
// first visitation, which follows document order within each subtree.
// The requested sections themselves are not included.
func CollectChildren(sections []docindex.Section, ids []string, relDepth int) []docindex.Section {
	if len(sections) == 0 || len(ids) == 0 {
		return nil
	}
	if relDepth < 1 {
		relDepth = 1
	}

	byID := make(map[string]int, len(sections))
	childrenOf := make(map[string][]int)
	for i, s := range sections {
		byID[s.ID] = i
		if pid, ok := docindex.ParentID(s.ID); ok {
			childrenOf[pid] = append(childrenOf[pid], i)
		}
	}

	minParentDepth := 0
	for _, id := range ids {
		d := docindex.Depth(id)
		if d > 0 && (minParentDepth == 0 || d < minParentDepth) {
			minParentDepth = d
		}
	}
	if minParentDepth == 0 {
		return nil
	}
	maxAllowedDepth := minParentDepth + relDepth

	seen := make(map[string]bool)
	var out []docindex.Section

	// Explicit depth bound on the recursion; ids deeper than
	// maxAllowedDepth are never expanded further.
	var visit func(id string)
	visit = func(id string) {
		for _, ci := range childrenOf[id] {
			child := sections[ci]
			if seen[child.ID] {
				continue
			}
			seen[child.ID] = true
			out = append(out, child)
			if docindex.Depth(child.ID) < maxAllowedDepth {
				visit(child.ID)
			}
		}
	}

	for _, id := range ids {
		if _, ok := byID[id]; ok {
			visit(id)
		}
	}
	return out
}
