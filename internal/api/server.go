package api

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dgallion1/docbro/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server serves a generated documentation site.
type Server struct {
	router chi.Router
	log    *slog.Logger
	cfg    config.Config
	root   string
}

// NewServer creates and configures the HTTP server over cfg.OutputDir.
func NewServer(log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		log:  log,
		cfg:  cfg,
		root: filepath.Clean(cfg.OutputDir),
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
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		if s.cfg.DocbroAPIKey != "" {
			r.Use(AuthMiddleware(s.cfg.DocbroAPIKey, s.log))
		}
		r.Get("/api/toc", s.handleTOC)
	})

	r.Handle("/*", http.FileServer(http.FS(os.DirFS(s.root))))

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
