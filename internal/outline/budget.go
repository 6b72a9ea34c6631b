package outline

import (
	"sort"

	"github.com/dgallion1/docscope/internal/docindex"
)

// minViable guards against a near-empty outline when the shallowest
// level alone already saturates a tiny budget.
const minViable = 3

// FilterDepth keeps sections whose level does not exceed maxDepth.
// maxDepth < 1 disables the filter.
func FilterDepth(sections []docindex.Section, maxDepth int) []docindex.Section {
	if maxDepth < 1 {
		return sections
	}
	out := make([]docindex.Section, 0, len(sections))
	for _, s := range sections {
		if s.Level <= maxDepth {
			out = append(out, s)
		}
	}
	return out
}

// SelectWithinBudget bounds a section list to at most budget entries.
//
// The heuristic runs in three phases: whole levels are included
// shallowest-first while they fit (the shallowest level goes in
// unconditionally); if that leaves fewer than minViable sections, the
// entire next deeper level is forced in even past the budget; any
// remaining budget is backfilled with the children of the deepest
// included level, whole sibling groups at a time, largest parents by
// character count first. Partial groups are never added.
//
// The sort in the backfill phase only decides membership; the returned
// slice always follows the input order. budget < 1 is a no-op.
func SelectWithinBudget(sections []docindex.Section, budget int) []docindex.Section {
	if budget < 1 || len(sections) == 0 {
		return sections
	}

	byLevel := make(map[int][]int)
	var levels []int
	for i, s := range sections {
		if _, seen := byLevel[s.Level]; !seen {
			levels = append(levels, s.Level)
		}
		byLevel[s.Level] = append(byLevel[s.Level], i)
	}
	sort.Ints(levels)

	included := make(map[int]bool, len(sections))
	total := 0
	deepest := 0

	for li, level := range levels {
		if li > 0 && total+len(byLevel[level]) > budget {
			break
		}
		for _, idx := range byLevel[level] {
			included[idx] = true
		}
		total += len(byLevel[level])
		deepest = level
	}

	if total < minViable && len(sections) >= minViable {
		if next, ok := nextLevel(levels, deepest); ok {
			for _, idx := range byLevel[next] {
				included[idx] = true
			}
			total += len(byLevel[next])
			deepest = next
		}
	}

	if total < budget {
		total = backfill(sections, byLevel, levels, included, deepest, budget, total)
	}

	out := make([]docindex.Section, 0, total)
	for i, s := range sections {
		if included[i] {
			out = append(out, s)
		}
	}
	return out
}

// backfill adds whole sibling groups from the child level of the deepest
// included level, parents with the most content first, skipping any
// group that would overflow the budget.
func backfill(sections []docindex.Section, byLevel map[int][]int, levels []int, included map[int]bool, deepest, budget, total int) int {
	childLevel, ok := nextLevel(levels, deepest)
	if !ok {
		return total
	}

	parentPos := make(map[string]int)
	for _, idx := range byLevel[deepest] {
		if included[idx] {
			parentPos[sections[idx].ID] = idx
		}
	}

	type siblingGroup struct {
		parentIdx int
		children  []int
	}
	byParent := make(map[string]*siblingGroup)
	for _, idx := range byLevel[childLevel] {
		pid, ok := docindex.ParentID(sections[idx].ID)
		if !ok {
			continue
		}
		pidx, ok := parentPos[pid]
		if !ok {
			continue
		}
		g := byParent[pid]
		if g == nil {
			g = &siblingGroup{parentIdx: pidx}
			byParent[pid] = g
		}
		g.children = append(g.children, idx)
	}

	// Document order first so the descending sort breaks ties by
	// original position.
	groups := make([]*siblingGroup, 0, len(byParent))
	for _, idx := range byLevel[deepest] {
		if g, ok := byParent[sections[idx].ID]; ok {
			groups = append(groups, g)
		}
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return sections[groups[i].parentIdx].CharacterCount > sections[groups[j].parentIdx].CharacterCount
	})

	for _, g := range groups {
		if total+len(g.children) > budget {
			continue
		}
		for _, idx := range g.children {
			included[idx] = true
		}
		total += len(g.children)
	}
	return total
}

func nextLevel(levels []int, after int) (int, bool) {
	for _, l := range levels {
		if l > after {
			return l, true
		}
	}
	return 0, false
}
