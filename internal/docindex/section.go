package docindex

import "strings"

// Section is one addressed, titled slice of a document, anchored by a
// single header line. The ID is a dot-joined sequence of 1-based sibling
// positions ("2.1.3"), so the number of segments always equals Level.
type Section struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Level           int    `json:"level"`
	CharacterCount  int    `json:"character_count"`
	SubsectionCount int    `json:"subsection_count,omitempty"`
}

// Range is the inclusive [Start, End] line span of a section. A section's
// range always contains its own header line and the full ranges of all
// its descendants.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// ParentID strips the last dot segment of an id. ok is false for
// single-segment ids, which have no parent.
func ParentID(id string) (string, bool) {
	i := strings.LastIndexByte(id, '.')
	if i < 0 {
		return "", false
	}
	return id[:i], true
}

// Depth is the number of dot-joined segments in an id.
func Depth(id string) int {
	if id == "" {
		return 0
	}
	return strings.Count(id, ".") + 1
}

// IsDescendant reports whether id sits strictly below ancestor in the
// numeric address space ("2.1.3" is a descendant of "2" and "2.1").
func IsDescendant(id, ancestor string) bool {
	return strings.HasPrefix(id, ancestor+".")
}
