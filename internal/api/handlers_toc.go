package api

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"net/url"
	"os"

	"github.com/dgallion1/docbro/internal/toc"
)

// handleTOC returns the generated page tree as JSON.
func (s *Server) handleTOC(w http.ResponseWriter, r *http.Request) {
	tree, err := toc.Build(os.DirFS(s.root), s.cfg.ProjectName)
	if errors.Is(err, fs.ErrNotExist) {
		jsonError(w, "no documentation has been built", http.StatusNotFound)
		return
	}
	if err != nil {
		s.log.Error("toc build failed", "error", err)
		jsonError(w, "failed to read documentation tree", http.StatusInternalServerError)
		return
	}

	prefix := url.PathEscape(s.cfg.ProjectName)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"project": s.cfg.ProjectName,
		"tree":    tree,
		"pages":   toc.Pages(tree),
		"lines":   toc.Lines(tree, prefix),
	})
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
