package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/dgallion1/docscope/internal/apperr"
	"github.com/dgallion1/docscope/internal/docs"
	"github.com/go-chi/chi/v5"
)

// handleListDocuments lists every discoverable document across the
// configured roots.
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	entries, err := s.svc.ListDocuments()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"documents": entries})
}

// handleTOC returns the bounded outline of a document. With format=text
// the response is the plain textual rendering instead of JSON.
func (s *Server) handleTOC(w http.ResponseWriter, r *http.Request) {
	opts := docs.TOCOptions{}
	var err error
	if opts.MaxDepth, err = intParam(r, "max_depth"); err != nil {
		writeError(w, err)
		return
	}
	if opts.MaxHeaders, err = intParam(r, "max_headers"); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.svc.TableOfContents(chi.URLParam(r, "fileID"), opts)
	if err != nil {
		writeError(w, err)
		return
	}

	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(res.Render()))
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleExpand lists deeper headings under the posted section ids.
func (s *Server) handleExpand(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SectionIDs []string `json:"section_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, apperr.Wrap(apperr.InvalidParameter, err, "invalid request body"))
		return
	}

	res, err := s.svc.ExpandSections(chi.URLParam(r, "fileID"), body.SectionIDs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleContent returns the raw (or HTML-rendered) text of the requested
// sections.
func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	ids := splitIDs(r.URL.Query().Get("sections"))
	asHTML := r.URL.Query().Get("format") == "html"

	res, err := s.svc.ReadSections(chi.URLParam(r, "fileID"), ids, asHTML)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleSearch runs a regular expression over one document.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r, "limit")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.svc.Search(chi.URLParam(r, "fileID"), r.URL.Query().Get("pattern"), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"requests": s.stats.Snapshot()})
}

func intParam(r *http.Request, name string) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, apperr.New(apperr.InvalidParameter, "%s must be an integer, got %q", name, v)
	}
	return n, nil
}

func splitIDs(raw string) []string {
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError translates the error taxonomy into a single structured
// response.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	body := map[string]any{"error": err.Error()}

	if ae, ok := apperr.As(err); ok {
		body["kind"] = string(ae.Kind)
		switch ae.Kind {
		case apperr.InvalidParameter:
			status = http.StatusBadRequest
		case apperr.FileNotFound, apperr.SectionNotFound:
			status = http.StatusNotFound
		case apperr.ParseError:
			status = http.StatusInternalServerError
		}
		if len(ae.IDs) > 0 {
			body["missing_sections"] = ae.IDs
		}
	}
	writeJSON(w, status, body)
}
