// internal/blueprint/blueprint.go
//
// Static-asset routes for registered themes.
//
// Context
// -------
// Every theme's static/ tree is exposed under one mount:
//
//	GET /_themes/{theme}/*  →  <theme dir>/static/<rest>
//
// Routes returns a chi sub-router that cmd/web mounts at MountPath.
// StaticURL is the inverse: it builds the public URL for one asset, and the
// render engine's themeStatic helper delegates to it.
//
// Unknown identifiers answer 404; paths that would escape the static tree
// answer 400.
package blueprint

import (
	"errors"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/yanizio/themes/internal/metrics"
	"github.com/yanizio/themes/internal/theme"
)

// MountPath is where cmd/web mounts Routes.
const MountPath = "/_themes"

// StaticURL returns the public URL for one asset of one theme.  The file
// argument uses slash separators, the same form templates use.
func StaticURL(themeID, file string) string {
	return MountPath + "/" + themeID + "/" + strings.TrimPrefix(path.Clean("/"+file), "/")
}

// Routes builds the static-file sub-router for mgr's themes.
func Routes(mgr *theme.Manager) chi.Router {
	r := chi.NewRouter()
	r.Get("/{theme}/*", func(w http.ResponseWriter, req *http.Request) {
		id := chi.URLParam(req, "theme")
		th, err := mgr.Get(id)
		if err != nil {
			if errors.Is(err, theme.ErrNotFound) {
				http.NotFound(w, req)
				return
			}
			http.Error(w, "theme registry error", http.StatusInternalServerError)
			return
		}

		rel, ok := cleanRelative(chi.URLParam(req, "*"))
		if !ok {
			http.Error(w, "bad asset path", http.StatusBadRequest)
			return
		}

		metrics.StaticRequestsTotal.Inc()
		http.ServeFile(w, req, filepath.Join(th.StaticPath, filepath.FromSlash(rel)))
	})
	return r
}

// cleanRelative normalises a wildcard match to a safe relative path.
// Rooting the input before Clean neutralises any ".." segments, so the
// result can never climb out of the static tree; only an empty result is
// rejected.
func cleanRelative(raw string) (string, bool) {
	rel := strings.TrimPrefix(path.Clean("/"+raw), "/")
	if rel == "" {
		return "", false
	}
	return rel, true
}
