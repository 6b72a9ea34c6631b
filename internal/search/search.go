// Package search is a thin consumer of the section tree: it runs a
// caller-supplied regular expression over document lines and attributes
// each hit to its innermost enclosing section.
package search

import (
	"regexp"

	"github.com/dgallion1/docscope/internal/apperr"
	"github.com/dgallion1/docscope/internal/docindex"
)

// contextLines is how many surrounding lines accompany each match.
const contextLines = 2

// Match is one regex hit.
type Match struct {
	Line         int      `json:"line"`
	Text         string   `json:"text"`
	Before       []string `json:"before,omitempty"`
	After        []string `json:"after,omitempty"`
	SectionID    string   `json:"sectionId,omitempty"`
	SectionTitle string   `json:"sectionTitle,omitempty"`
}

// Find scans doc's lines for pattern and returns at most limit matches
// in line order. A pattern that does not compile is the caller's fault.
func Find(doc *docindex.Document, pattern string, limit int) ([]Match, error) {
	if pattern == "" {
		return nil, apperr.New(apperr.InvalidParameter, "search pattern is required")
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, apperr.Wrap(apperr.InvalidParameter, err, "invalid search pattern")
	}
	if limit < 1 {
		limit = 100
	}

	titles := make(map[string]string, len(doc.Sections))
	for _, s := range doc.Sections {
		titles[s.ID] = s.Title
	}

	var matches []Match
	for i, line := range doc.Lines {
		if !re.MatchString(line) {
			continue
		}
		m := Match{Line: i, Text: line, Before: before(doc.Lines, i), After: after(doc.Lines, i)}
		if id := doc.EnclosingSection(i); id != "" {
			m.SectionID = id
			m.SectionTitle = titles[id]
		}
		matches = append(matches, m)
		if len(matches) >= limit {
			break
		}
	}
	return matches, nil
}

func before(lines []string, i int) []string {
	start := i - contextLines
	if start < 0 {
		start = 0
	}
	if start == i {
		return nil
	}
	out := make([]string, i-start)
	copy(out, lines[start:i])
	return out
}

func after(lines []string, i int) []string {
	end := i + 1 + contextLines
	if end > len(lines) {
		end = len(lines)
	}
	if end == i+1 {
		return nil
	}
	out := make([]string, end-i-1)
	copy(out, lines[i+1:end])
	return out
}
