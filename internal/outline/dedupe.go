package outline

import (
	"sort"

	"github.com/dgallion1/docscope/internal/docindex"
)

// SelectContent drops requested ids whose content is already subsumed by
// an accepted ancestor: the id must be both a dot-prefixed descendant of
// the ancestor and fully inside its line range. Ids are considered
// shallowest first (stable), and the accepted order is returned as-is.
// Unknown ids pass through unfiltered so the caller's not-found handling
// can surface them distinctly.
func SelectContent(ids []string, ranges map[string]docindex.Range) []string {
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.SliceStable(sorted, func(i, j int) bool {
		return docindex.Depth(sorted[i]) < docindex.Depth(sorted[j])
	})

	accepted := make([]string, 0, len(sorted))
	for _, id := range sorted {
		r, known := ranges[id]
		if known && subsumed(id, r, accepted, ranges) {
			continue
		}
		accepted = append(accepted, id)
	}
	return accepted
}

func subsumed(id string, r docindex.Range, accepted []string, ranges map[string]docindex.Range) bool {
	for _, a := range accepted {
		ar, ok := ranges[a]
		if !ok {
			continue
		}
		if docindex.IsDescendant(id, a) && r.Start >= ar.Start && r.End <= ar.End {
			return true
		}
	}
	return false
}
