package docs

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dgallion1/docscope/internal/apperr"
	"github.com/dgallion1/docscope/internal/config"
	"github.com/dgallion1/docscope/internal/library"
)

const manual = `# Manual

Welcome.

## Install

Get the binary.

### Linux

apt instructions here.

### macOS

brew instructions here.

## Configure

Set DOC_ROOTS.

# Reference

## Flags
`

func newTestService(t *testing.T, budget, depth int) *Service {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "manual.md"), []byte(manual), 0o644); err != nil {
		t.Fatal(err)
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.Config{
		DocRoots:         []string{root},
		MaxFileBytes:     1 << 20,
		MaxHeaderBudget:  budget,
		MaxTocDepth:      depth,
		MaxSearchResults: 100,
	}
	lib := library.New(cfg.DocRoots, cfg.MaxFileBytes, false, log)
	return NewService(lib, cfg, log)
}

func TestTableOfContents(t *testing.T) {
	svc := newTestService(t, 25, 3)
	res, err := svc.TableOfContents("manual.md", TOCOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Filename != "manual.md" || res.FileID == "" {
		t.Errorf("missing identity fields: %+v", res)
	}

	var ids []string
	for _, s := range res.Sections {
		ids = append(ids, s.ID)
	}
	want := []string{"1", "1.1", "1.1.1", "1.1.2", "1.2", "2", "2.1"}
	if strings.Join(ids, ",") != strings.Join(want, ",") {
		t.Fatalf("expected sections %v, got %v", want, ids)
	}

	// Everything visible: no instructions.
	if res.Instructions != "" {
		t.Errorf("all sections visible, instructions should be empty, got %q", res.Instructions)
	}
}

func TestTableOfContents_DepthCapHidesChildren(t *testing.T) {
	svc := newTestService(t, 25, 2)
	res, err := svc.TableOfContents("manual.md", TOCOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range res.Sections {
		if s.Level > 2 {
			t.Errorf("section %s exceeds depth cap", s.ID)
		}
		if s.ID == "1.1" && s.SubsectionCount != 2 {
			t.Errorf("section 1.1 should report 2 hidden children, got %d", s.SubsectionCount)
		}
	}
	if res.Instructions == "" {
		t.Error("hidden children must surface instructions")
	}
}

func TestTableOfContents_RenderedForm(t *testing.T) {
	svc := newTestService(t, 25, 2)
	res, err := svc.TableOfContents("manual.md", TOCOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := res.Render()
	if !strings.Contains(text, "1.1 Install {hiddenSubsections: 2}") {
		t.Errorf("rendered outline missing hidden suffix:\n%s", text)
	}
	if !strings.Contains(text, res.Instructions) {
		t.Errorf("rendered outline should append instructions:\n%s", text)
	}
}

func TestExpandSections(t *testing.T) {
	svc := newTestService(t, 25, 3)
	res, err := svc.ExpandSections("manual.md", []string{"1.1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var ids []string
	for _, s := range res.Sections {
		ids = append(ids, s.ID)
	}
	if strings.Join(ids, ",") != "1.1.1,1.1.2" {
		t.Fatalf("expected the two subsections of 1.1, got %v", ids)
	}
}

func TestExpandSections_MissingIDsAggregated(t *testing.T) {
	svc := newTestService(t, 25, 3)
	_, err := svc.ExpandSections("manual.md", []string{"9", "1.1", "8.8"})
	var ae *apperr.Error
	if !errors.As(err, &ae) || ae.Kind != apperr.SectionNotFound {
		t.Fatalf("expected SectionNotFound, got %v", err)
	}
	if len(ae.IDs) != 2 || ae.IDs[0] != "9" || ae.IDs[1] != "8.8" {
		t.Fatalf("expected both missing ids collected, got %v", ae.IDs)
	}
}

func TestReadSections_DeduplicatesNested(t *testing.T) {
	svc := newTestService(t, 25, 3)
	res, err := svc.ReadSections("manual.md", []string{"1", "1.1"}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Sections) != 1 || res.Sections[0].ID != "1" {
		t.Fatalf("nested request should collapse to the ancestor, got %+v", res.Sections)
	}
	text := res.Sections[0].Text
	if !strings.HasPrefix(text, "# Manual") {
		t.Errorf("section text must start at its own header line, got %q", text[:20])
	}
	if !strings.Contains(text, "brew instructions here.") {
		t.Errorf("section text must span all descendants, got:\n%s", text)
	}
}

func TestReadSections_HTMLRendering(t *testing.T) {
	svc := newTestService(t, 25, 3)
	res, err := svc.ReadSections("manual.md", []string{"1.2"}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Sections) != 1 {
		t.Fatalf("expected one section, got %d", len(res.Sections))
	}
	if !strings.Contains(res.Sections[0].HTML, "<h2") {
		t.Errorf("expected rendered heading in HTML output, got:\n%s", res.Sections[0].HTML)
	}
}

func TestSearch(t *testing.T) {
	svc := newTestService(t, 25, 3)
	res, err := svc.Search("manual.md", `instructions`, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(res.Matches))
	}
	if res.Matches[0].SectionID != "1.1.1" {
		t.Errorf("first match should land in 1.1.1, got %s", res.Matches[0].SectionID)
	}
}

func TestUnknownDocument(t *testing.T) {
	svc := newTestService(t, 25, 3)
	_, err := svc.TableOfContents("nope.md", TOCOptions{})
	if apperr.KindOf(err) != apperr.FileNotFound {
		t.Fatalf("expected FileNotFound, got %v", err)
	}
}

func TestTableOfContents_EmptyName(t *testing.T) {
	svc := newTestService(t, 25, 3)
	_, err := svc.TableOfContents("  ", TOCOptions{})
	if apperr.KindOf(err) != apperr.InvalidParameter {
		t.Fatalf("expected InvalidParameter, got %v", err)
	}
}
