// Package docs wires the library, extractor and outline selection into
// request-scoped operations. Every operation parses the document fresh
// and discards the derived index when it returns; concurrent calls never
// share state.
package docs

import (
	"bytes"
	"log/slog"
	"strings"

	"github.com/dgallion1/docscope/internal/apperr"
	"github.com/dgallion1/docscope/internal/config"
	"github.com/dgallion1/docscope/internal/docindex"
	"github.com/dgallion1/docscope/internal/library"
	"github.com/dgallion1/docscope/internal/outline"
	"github.com/dgallion1/docscope/internal/search"
	"github.com/yuin/goldmark"
)

// Service exposes the document navigation operations.
type Service struct {
	lib *library.Library
	cfg config.Config
	log *slog.Logger
}

func NewService(lib *library.Library, cfg config.Config, log *slog.Logger) *Service {
	return &Service{lib: lib, cfg: cfg, log: log}
}

// TableOfContentsResult is the outline response shape.
type TableOfContentsResult struct {
	FileID       string             `json:"fileId"`
	Filename     string             `json:"filename"`
	Sections     []docindex.Section `json:"sections"`
	Instructions string             `json:"instructions,omitempty"`
}

// Render emits the textual outline form, one line per section, with the
// navigation note appended when present.
func (r *TableOfContentsResult) Render() string {
	body := outline.RenderOutline(r.Sections)
	if r.Instructions == "" {
		return body
	}
	return body + "\n\n" + r.Instructions
}

// TOCOptions overrides the configured depth and budget for one call.
// Zero values keep the configured defaults; a negative MaxHeaders
// disables the budget.
type TOCOptions struct {
	MaxDepth   int
	MaxHeaders int
}

// ListDocuments returns every discoverable document.
func (s *Service) ListDocuments() ([]library.Entry, error) {
	return s.lib.List()
}

// TableOfContents builds a bounded outline for one document.
func (s *Service) TableOfContents(nameOrID string, opts TOCOptions) (*TableOfContentsResult, error) {
	if strings.TrimSpace(nameOrID) == "" {
		return nil, apperr.New(apperr.InvalidParameter, "document name or id is required")
	}
	entry, doc, err := s.load(nameOrID)
	if err != nil {
		return nil, err
	}

	depth := opts.MaxDepth
	if depth == 0 {
		depth = s.cfg.MaxTocDepth
	}
	budget := opts.MaxHeaders
	if budget == 0 {
		budget = s.cfg.MaxHeaderBudget
	}

	filtered := outline.FilterDepth(doc.Sections, depth)
	bounded := outline.SelectWithinBudget(filtered, budget)
	sections, hidden := outline.AnnotateHidden(bounded)

	res := &TableOfContentsResult{
		FileID:   entry.FileID,
		Filename: entry.Name,
		Sections: sections,
	}
	if hidden {
		res.Instructions = outline.Instructions
	}
	return res, nil
}

// ExpandSections pages deeper into the tree: it collects the descendants
// of the requested sections down to the configured relative depth, then
// applies the same budget selection as the top-level outline.
func (s *Service) ExpandSections(nameOrID string, ids []string) (*TableOfContentsResult, error) {
	if len(ids) == 0 {
		return nil, apperr.New(apperr.InvalidParameter, "at least one section id is required")
	}
	entry, doc, err := s.load(nameOrID)
	if err != nil {
		return nil, err
	}
	if missing := missingIDs(ids, doc); len(missing) > 0 {
		return nil, apperr.MissingSections(missing)
	}

	collected := outline.CollectChildren(doc.Sections, ids, s.cfg.MaxTocDepth)
	bounded := outline.SelectWithinBudget(collected, s.cfg.MaxHeaderBudget)
	sections, hidden := outline.AnnotateHidden(bounded)

	res := &TableOfContentsResult{
		FileID:   entry.FileID,
		Filename: entry.Name,
		Sections: sections,
	}
	if hidden {
		res.Instructions = outline.Instructions
	}
	return res, nil
}

// SectionContent is one returned content slice.
type SectionContent struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
	Text  string `json:"text"`
	HTML  string `json:"html,omitempty"`
}

// ContentResult is the section content response shape.
type ContentResult struct {
	FileID   string           `json:"fileId"`
	Filename string           `json:"filename"`
	Sections []SectionContent `json:"sections"`
}

// ReadSections returns the raw text of the requested sections, dropping
// any whose content an accepted ancestor already covers. When asHTML is
// set, each slice is additionally rendered as HTML.
func (s *Service) ReadSections(nameOrID string, ids []string, asHTML bool) (*ContentResult, error) {
	if len(ids) == 0 {
		return nil, apperr.New(apperr.InvalidParameter, "at least one section id is required")
	}
	entry, doc, err := s.load(nameOrID)
	if err != nil {
		return nil, err
	}
	if missing := missingIDs(ids, doc); len(missing) > 0 {
		return nil, apperr.MissingSections(missing)
	}

	titles := make(map[string]string, len(doc.Sections))
	for _, sec := range doc.Sections {
		titles[sec.ID] = sec.Title
	}

	accepted := outline.SelectContent(ids, doc.Ranges)
	res := &ContentResult{FileID: entry.FileID, Filename: entry.Name}
	for _, id := range accepted {
		text, ok := doc.SectionText(id)
		if !ok {
			continue
		}
		sc := SectionContent{ID: id, Title: titles[id], Text: text}
		if asHTML {
			var buf bytes.Buffer
			if err := goldmark.Convert([]byte(text), &buf); err != nil {
				return nil, apperr.Wrap(apperr.ParseError, err, "render section "+id)
			}
			sc.HTML = buf.String()
		}
		res.Sections = append(res.Sections, sc)
	}
	return res, nil
}

// SearchResult is the regex search response shape.
type SearchResult struct {
	FileID   string         `json:"fileId"`
	Filename string         `json:"filename"`
	Pattern  string         `json:"pattern"`
	Matches  []search.Match `json:"matches"`
}

// Search runs a regular expression over one document.
func (s *Service) Search(nameOrID, pattern string, limit int) (*SearchResult, error) {
	entry, doc, err := s.load(nameOrID)
	if err != nil {
		return nil, err
	}
	if limit < 1 || limit > s.cfg.MaxSearchResults {
		limit = s.cfg.MaxSearchResults
	}
	matches, err := search.Find(doc, pattern, limit)
	if err != nil {
		return nil, err
	}
	if matches == nil {
		matches = []search.Match{}
	}
	return &SearchResult{
		FileID:   entry.FileID,
		Filename: entry.Name,
		Pattern:  pattern,
		Matches:  matches,
	}, nil
}

// load resolves and parses a document for exactly one call.
func (s *Service) load(nameOrID string) (*library.Entry, *docindex.Document, error) {
	entry, err := s.lib.Resolve(nameOrID)
	if err != nil {
		return nil, nil, err
	}
	text, err := s.lib.Read(entry)
	if err != nil {
		return nil, nil, err
	}
	return entry, docindex.Parse(text), nil
}

// missingIDs collects every requested id absent from the parsed tree, so
// the caller sees them all in a single error.
func missingIDs(ids []string, doc *docindex.Document) []string {
	var missing []string
	for _, id := range ids {
		if _, ok := doc.Ranges[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
