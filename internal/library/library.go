// Package library maps document names and stable file ids to paths
// across one or more configured roots, and reads documents through the
// format loaders. Discovery walks the roots on every call; nothing is
// cached between requests.
package library

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dgallion1/docscope/internal/apperr"
	"github.com/dgallion1/docscope/internal/loader"
)

// Entry is one discoverable document.
type Entry struct {
	FileID    string `json:"fileId"`
	Name      string `json:"filename"`
	RelPath   string `json:"path"`
	SizeBytes int64  `json:"sizeBytes"`

	// Absolute location on disk; not exposed to clients.
	AbsPath string `json:"-"`
}

// Library resolves names to document paths.
type Library struct {
	roots        []string
	maxFileBytes int64
	pdfFallback  bool
	log          *slog.Logger
}

func New(roots []string, maxFileBytes int64, pdfFallback bool, log *slog.Logger) *Library {
	return &Library{
		roots:        roots,
		maxFileBytes: maxFileBytes,
		pdfFallback:  pdfFallback,
		log:          log,
	}
}

// FileID returns the stable 16-hex id for a root-relative path. The id
// survives restarts because it depends only on the path.
func FileID(relPath string) string {
	h := sha256.Sum256([]byte(filepath.ToSlash(relPath)))
	return hex.EncodeToString(h[:])[:16]
}

// List walks every root in order and returns supported documents in walk
// order. Unreadable subtrees are skipped, not fatal.
func (l *Library) List() ([]Entry, error) {
	var entries []Entry
	for _, root := range l.roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				l.log.Warn("skipping unreadable path", "path", path, "error", err)
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() || !loader.IsSupportedExtension(d.Name()) {
				return nil
			}
			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				rel = d.Name()
			}
			info, infoErr := d.Info()
			var size int64
			if infoErr == nil {
				size = info.Size()
			}
			entries = append(entries, Entry{
				FileID:    FileID(rel),
				Name:      d.Name(),
				RelPath:   filepath.ToSlash(rel),
				SizeBytes: size,
				AbsPath:   path,
			})
			return nil
		})
		if err != nil {
			return nil, apperr.Wrap(apperr.FileNotFound, err, "walk root "+root)
		}
	}
	return entries, nil
}

// Resolve maps a file id, root-relative path, or bare filename to an
// entry. Ids are checked first so a client can always round-trip the id
// it was handed. The first match across roots wins.
func (l *Library) Resolve(nameOrID string) (*Entry, error) {
	if nameOrID == "" {
		return nil, apperr.New(apperr.InvalidParameter, "document name or id is required")
	}
	entries, err := l.List()
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].FileID == nameOrID {
			return &entries[i], nil
		}
	}
	rel := filepath.ToSlash(nameOrID)
	for i := range entries {
		if entries[i].RelPath == rel {
			return &entries[i], nil
		}
	}
	for i := range entries {
		if entries[i].Name == nameOrID {
			return &entries[i], nil
		}
	}
	return nil, apperr.New(apperr.FileNotFound, "document not found: %s", nameOrID)
}

// Read loads a document and converts it to headed text.
func (l *Library) Read(e *Entry) (string, error) {
	if e.SizeBytes > l.maxFileBytes {
		return "", apperr.New(apperr.InvalidParameter,
			"document %s exceeds max size (%d bytes)", e.RelPath, l.maxFileBytes)
	}

	ld, err := loader.ForFile(e.Name, l.pdfFallback)
	if err != nil {
		return "", apperr.Wrap(apperr.InvalidParameter, err, "unsupported document")
	}

	f, err := os.Open(e.AbsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", apperr.Wrap(apperr.FileNotFound, err, "open "+e.RelPath)
		}
		return "", apperr.Wrap(apperr.ParseError, err, "open "+e.RelPath)
	}
	defer f.Close()

	text, err := ld.Load(io.LimitReader(f, l.maxFileBytes), e.Name)
	if err != nil {
		return "", apperr.Wrap(apperr.ParseError, err, "load "+e.RelPath)
	}
	return text, nil
}
