package docindex

import "strings"

// NormalizeLines canonicalizes line endings to LF and splits the text
// into lines. All downstream line offsets are relative to this split.
func NormalizeLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
