package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/docscope/internal/config"
	"github.com/dgallion1/docscope/internal/docs"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for docscope.
type Server struct {
	router chi.Router
	svc    *docs.Service
	stats  *RequestStats
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(svc *docs.Service, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		svc:   svc,
		stats: NewRequestStats(0),
		log:   log,
		cfg:   cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log, s.stats))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// API endpoints; bearer auth only when a key is configured.
	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Get("/api/documents", s.handleListDocuments)
		r.Get("/api/documents/{fileID}/toc", s.handleTOC)
		r.Post("/api/documents/{fileID}/toc/expand", s.handleExpand)
		r.Get("/api/documents/{fileID}/content", s.handleContent)
		r.Get("/api/documents/{fileID}/search", s.handleSearch)
		r.Get("/api/stats", s.handleStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
