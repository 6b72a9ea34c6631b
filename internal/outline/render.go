package outline

import (
	"fmt"
	"strings"

	"github.com/dgallion1/docscope/internal/docindex"
)

// Instructions accompanies any response in which at least one section
// still hides children.
const Instructions = "Some sections have hidden subsections (shown as {hiddenSubsections: N}). " +
	"To see them, expand the table of contents with the ids of the sections you want to open."

// RenderOutline emits one line per section, "<id> <title>", with a
// "{hiddenSubsections: N}" suffix on sections whose children are not all
// present.
func RenderOutline(sections []docindex.Section) string {
	var b strings.Builder
	for i, s := range sections {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(s.ID)
		b.WriteByte(' ')
		b.WriteString(s.Title)
		if s.SubsectionCount > 0 {
			fmt.Fprintf(&b, " {hiddenSubsections: %d}", s.SubsectionCount)
		}
	}
	return b.String()
}
