package library

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/dgallion1/docscope/internal/apperr"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestList_WalksRootsInOrder(t *testing.T) {
	rootA := t.TempDir()
	rootB := t.TempDir()
	writeFile(t, rootA, "guide.md", "# Guide\n")
	writeFile(t, rootA, "sub/deep.md", "# Deep\n")
	writeFile(t, rootA, "ignored.bin", "xx")
	writeFile(t, rootB, "other.txt", "text\n")

	lib := New([]string{rootA, rootB}, 1<<20, false, testLogger())
	entries, err := lib.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 supported documents, got %d", len(entries))
	}
	if entries[len(entries)-1].Name != "other.txt" {
		t.Errorf("expected second root's file last, got %q", entries[len(entries)-1].Name)
	}
}

func TestFileID_StableAndPathDerived(t *testing.T) {
	a := FileID("sub/deep.md")
	b := FileID("sub/deep.md")
	if a != b {
		t.Fatal("file id must be deterministic")
	}
	if len(a) != 16 {
		t.Fatalf("expected 16-hex id, got %q", a)
	}
	if FileID("sub/deep.md") == FileID("deep.md") {
		t.Fatal("different paths must yield different ids")
	}
	// Windows-style separators normalize to the same id.
	if FileID(filepath.FromSlash("sub/deep.md")) != a {
		t.Fatal("file id must not depend on the path separator")
	}
}

func TestResolve(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "guide.md", "# Guide\n")
	writeFile(t, root, "sub/deep.md", "# Deep\n")

	lib := New([]string{root}, 1<<20, false, testLogger())

	byName, err := lib.Resolve("guide.md")
	if err != nil {
		t.Fatalf("resolve by name: %v", err)
	}
	byID, err := lib.Resolve(byName.FileID)
	if err != nil {
		t.Fatalf("resolve by id: %v", err)
	}
	if byID.RelPath != byName.RelPath {
		t.Errorf("id and name should resolve to the same entry, got %q vs %q", byID.RelPath, byName.RelPath)
	}

	byRel, err := lib.Resolve("sub/deep.md")
	if err != nil {
		t.Fatalf("resolve by relative path: %v", err)
	}
	if byRel.Name != "deep.md" {
		t.Errorf("expected deep.md, got %q", byRel.Name)
	}
}

func TestResolve_NotFound(t *testing.T) {
	lib := New([]string{t.TempDir()}, 1<<20, false, testLogger())
	_, err := lib.Resolve("missing.md")
	if err == nil {
		t.Fatal("expected an error for a missing document")
	}
	var ae *apperr.Error
	if !errors.As(err, &ae) || ae.Kind != apperr.FileNotFound {
		t.Fatalf("expected FileNotFound, got %v", err)
	}
}

func TestResolve_EmptyName(t *testing.T) {
	lib := New([]string{t.TempDir()}, 1<<20, false, testLogger())
	_, err := lib.Resolve("")
	if err == nil {
		t.Fatal("expected an error for empty input")
	}
	if apperr.KindOf(err) != apperr.InvalidParameter {
		t.Fatalf("expected InvalidParameter, got %v", err)
	}
}

func TestRead(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "guide.md", "# Guide\n\nBody.\n")

	lib := New([]string{root}, 1<<20, false, testLogger())
	e, err := lib.Resolve("guide.md")
	if err != nil {
		t.Fatal(err)
	}
	text, err := lib.Read(e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "# Guide\n\nBody.\n" {
		t.Errorf("unexpected text %q", text)
	}
}

func TestRead_OversizeRejected(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "big.md", "# Big\n0123456789\n")

	lib := New([]string{root}, 4, false, testLogger())
	e, err := lib.Resolve("big.md")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := lib.Read(e); apperr.KindOf(err) != apperr.InvalidParameter {
		t.Fatalf("expected InvalidParameter for oversize document, got %v", err)
	}
}
