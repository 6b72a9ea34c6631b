package outline

import (
	"reflect"
	"testing"

	"github.com/dgallion1/docscope/internal/docindex"
)

func deepSections() []docindex.Section {
	ids := []string{"1", "1.1", "1.1.1", "1.1.1.1", "1.1.1.1.1", "1.2", "1.2.1", "2", "2.1"}
	out := make([]docindex.Section, 0, len(ids))
	for _, id := range ids {
		out = append(out, sec(id, "s"+id, 10))
	}
	return out
}

func TestCollectChildren_Basic(t *testing.T) {
	got := CollectChildren(deepSections(), []string{"1"}, 2)
	// Depth bound: min parent depth 1 + 2 = 3, so nothing below depth 3.
	want := []string{"1.1", "1.1.1", "1.2", "1.2.1"}
	if !reflect.DeepEqual(idsOf(got), want) {
		t.Fatalf("expected %v, got %v", want, idsOf(got))
	}
}

func TestCollectChildren_OverlappingRequests(t *testing.T) {
	// "1.1" is itself a descendant of "1"; the shared seen-set keeps its
	// children from appearing twice.
	got := CollectChildren(deepSections(), []string{"1", "1.1"}, 2)
	seen := map[string]int{}
	for _, s := range got {
		seen[s.ID]++
		if seen[s.ID] > 1 {
			t.Fatalf("section %s collected twice", s.ID)
		}
	}
	want := []string{"1.1", "1.1.1", "1.2", "1.2.1"}
	if !reflect.DeepEqual(idsOf(got), want) {
		t.Fatalf("expected %v, got %v", want, idsOf(got))
	}
}

func TestCollectChildren_DepthRelativeToShallowestRequest(t *testing.T) {
	// Requesting a deep section alone allows its subtree down to
	// depth(id)+relDepth.
	got := CollectChildren(deepSections(), []string{"1.1.1"}, 2)
	want := []string{"1.1.1.1", "1.1.1.1.1"}
	if !reflect.DeepEqual(idsOf(got), want) {
		t.Fatalf("expected %v, got %v", want, idsOf(got))
	}

	// A shallower id in the same request lowers the shared bound.
	got = CollectChildren(deepSections(), []string{"1.1.1", "2"}, 2)
	want = []string{"1.1.1.1", "2.1"}
	if !reflect.DeepEqual(idsOf(got), want) {
		t.Fatalf("expected %v, got %v", want, idsOf(got))
	}
}

func TestCollectChildren_MissingIDsAreSkipped(t *testing.T) {
	got := CollectChildren(deepSections(), []string{"9", "2"}, 2)
	want := []string{"2.1"}
	if !reflect.DeepEqual(idsOf(got), want) {
		t.Fatalf("expected %v, got %v", want, idsOf(got))
	}
	if got := CollectChildren(deepSections(), []string{"9"}, 2); len(got) != 0 {
		t.Fatalf("expected no sections for an unknown id, got %v", idsOf(got))
	}
}
