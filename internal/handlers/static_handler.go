package handlers

import (
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"church-backend/static"
)

// StaticHandler serves the site pages. Files come from the configured
// static directory when it exists, with the embedded bundle as fallback,
// so the binary works standalone.
type StaticHandler struct {
	Dir string
}

func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{Dir: dir}
}

// ServeHTTP routes / to index.html, /admin to admin.html, and everything
// else to the matching file. Unknown paths fall back to index.html so
// client-side routes resolve.
func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(filepath.Clean("/"+r.URL.Path), "/")

	switch {
	case name == "" || name == ".":
		name = "index.html"
	case name == "admin":
		name = "admin.html"
	}

	if h.Dir != "" {
		full := filepath.Join(h.Dir, name)
		if info, err := os.Stat(full); err == nil && !info.IsDir() {
			http.ServeFile(w, r, full)
			return
		}
	}

	data, err := fs.ReadFile(static.FS, name)
	if err != nil {
		// SPA fallback.
		data, err = fs.ReadFile(static.FS, "index.html")
		if err != nil {
			http.NotFound(w, r)
			return
		}
		name = "index.html"
	}

	if strings.HasSuffix(name, ".html") {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
	}
	w.Write(data)
}
