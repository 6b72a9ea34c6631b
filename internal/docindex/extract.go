package docindex

import (
	"strconv"
	"strings"
)

// Document is a fully parsed, immutable view of one text document. It is
// built fresh per request and discarded afterwards; nothing here is
// shared or cached across calls.
type Document struct {
	Lines    []string
	Sections []Section
	Ranges   map[string]Range
}

// Parse normalizes the raw text and extracts the section tree.
func Parse(text string) *Document {
	lines := NormalizeLines(text)
	sections, ranges := extract(lines)
	return &Document{Lines: lines, Sections: sections, Ranges: ranges}
}

// SectionText returns the raw text spanned by a section, header line
// included. ok is false for unknown ids.
func (d *Document) SectionText(id string) (string, bool) {
	r, ok := d.Ranges[id]
	if !ok {
		return "", false
	}
	return strings.Join(d.Lines[r.Start:r.End+1], "\n"), true
}

// EnclosingSection returns the id of the innermost section whose range
// contains the given line, or "" when the line precedes all headers.
// Containing sections form a chain, so the deepest one is unique.
func (d *Document) EnclosingSection(line int) string {
	best := ""
	bestDepth := 0
	for id, r := range d.Ranges {
		if line >= r.Start && line <= r.End {
			if depth := Depth(id); depth > bestDepth {
				best, bestDepth = id, depth
			}
		}
	}
	return best
}

// headerLevel recognizes a header line: 1-6 marker characters at line
// start followed by whitespace and the title. Seven or more markers, or
// markers without trailing whitespace, are not headers. The trimmed
// title may be empty.
func headerLevel(line string) (int, string, bool) {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n < 1 || n > 6 || n == len(line) {
		return 0, "", false
	}
	if line[n] != ' ' && line[n] != '\t' {
		return 0, "", false
	}
	return n, strings.TrimSpace(line[n:]), true
}

// extract performs the single pass over the lines: a 6-slot sibling
// position counter assigns ids, and a stack of open sections is closed
// LIFO whenever an equal-or-shallower header appears. Header recognition
// is line-local, so a malformed line cannot corrupt other sections.
//
// Headers that happen to sit inside fenced code samples are indexed like
// any other header; fences are not tracked.
func extract(lines []string) ([]Section, map[string]Range) {
	var counters [6]int

	type openSection struct {
		idx   int // index into sections
		level int
	}

	var sections []Section
	ranges := make(map[string]Range)
	var stack []openSection

	closeAtOrBelow := func(level, endLine int) {
		for len(stack) > 0 && stack[len(stack)-1].level >= level {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			r := ranges[sections[top.idx].ID]
			r.End = endLine
			ranges[sections[top.idx].ID] = r
		}
	}

	for i, line := range lines {
		level, title, ok := headerLevel(line)
		if !ok {
			continue
		}

		counters[level-1]++
		for j := level; j < 6; j++ {
			counters[j] = 0
		}
		segs := make([]string, level)
		for j := 0; j < level; j++ {
			segs[j] = strconv.Itoa(counters[j])
		}
		id := strings.Join(segs, ".")

		closeAtOrBelow(level, i-1)

		sections = append(sections, Section{ID: id, Title: title, Level: level})
		ranges[id] = Range{Start: i, End: len(lines) - 1}
		stack = append(stack, openSection{idx: len(sections) - 1, level: level})
	}
	closeAtOrBelow(1, len(lines)-1)

	// Character counts: length of the section's lines joined with "\n".
	for k := range sections {
		r := ranges[sections[k].ID]
		n := 0
		for i := r.Start; i <= r.End; i++ {
			n += len(lines[i])
		}
		sections[k].CharacterCount = n + (r.End - r.Start)
	}

	// Direct-child counts via a single grouping pass over parent ids.
	childCount := make(map[string]int)
	for _, s := range sections {
		if pid, ok := ParentID(s.ID); ok {
			childCount[pid]++
		}
	}
	for k := range sections {
		sections[k].SubsectionCount = childCount[sections[k].ID]
	}

	return sections, ranges
}
