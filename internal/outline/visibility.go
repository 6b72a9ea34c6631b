package outline

import "github.com/dgallion1/docscope/internal/docindex"

// AnnotateHidden recomputes SubsectionCount for a finalized subset.
// Counts are parse-time truth for the full document; here each section's
// field is rewritten to the number of direct children NOT present in the
// subset, and dropped entirely when every child is visible. The returned
// flag reports whether any section still hides children, which decides
// whether a response carries navigation instructions.
func AnnotateHidden(subset []docindex.Section) ([]docindex.Section, bool) {
	visible := make(map[string]int, len(subset))
	for _, s := range subset {
		if pid, ok := docindex.ParentID(s.ID); ok {
			visible[pid]++
		}
	}

	out := make([]docindex.Section, len(subset))
	anyHidden := false
	for i, s := range subset {
		if s.SubsectionCount > 0 {
			if n := visible[s.ID]; n == s.SubsectionCount {
				s.SubsectionCount = 0
			} else {
				s.SubsectionCount -= n
				anyHidden = true
			}
		}
		out[i] = s
	}
	return out, anyHidden
}
