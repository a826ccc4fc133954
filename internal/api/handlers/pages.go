package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/baharkarakas/exercise-tracker/internal/api/httpx"
)

const NotFoundMsg = "Not found"

// Index serves index.html from dir.
func Index(dir string) http.HandlerFunc {
	page := filepath.Join(dir, "index.html")
	return func(w http.ResponseWriter, r *http.Request) {
		if fi, err := os.Stat(page); err != nil || fi.IsDir() {
			NotFound(w, r)
			return
		}
		http.ServeFile(w, r, page)
	}
}

// Static serves GET/HEAD requests for files under dir and answers everything
// else that reached it with a JSON 404.
func Static(dir string) http.HandlerFunc {
	root := http.Dir(dir)
	files := http.FileServer(root)
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			NotFound(w, r)
			return
		}
		f, err := root.Open(path.Clean("/" + r.URL.Path))
		if err != nil {
			NotFound(w, r)
			return
		}
		fi, err := f.Stat()
		f.Close()
		if err != nil || fi.IsDir() {
			NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	}
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	httpx.WriteError(w, http.StatusNotFound, NotFoundMsg)
}
