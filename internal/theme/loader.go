// internal/theme/loader.go
//
// Theme discovery.
//
// A Loader is any function that yields themes from somewhere; the Manager
// runs its loaders in order on every refresh.  Two stock loaders cover the
// common layouts:
//
//   • PackagedLoader – <application root>/themes, themes shipped with the app.
//   • PathsLoader    – operator-configured search paths (themes.paths).
//
// A directory that cannot be read as a theme is skipped with a WARN log so
// one broken theme never takes discovery down with it.
package theme

import (
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/yanizio/themes/internal/metrics"
)

// Loader yields zero or more themes per invocation.
type Loader func() ([]*Theme, error)

// LoadFrom scans the immediate subdirectories of dir and returns one Theme
// per subdirectory that carries a descriptor.  Results are sorted by
// identifier.  A missing dir is not an error; it simply yields nothing.
func LoadFrom(dir string) ([]*Theme, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var themes []*Theme
	for _, ent := range entries {
		if !ent.IsDir() {
			continue
		}
		sub := filepath.Join(dir, ent.Name())
		if _, err := os.Stat(filepath.Join(sub, InfoFile)); err != nil {
			continue // not a theme directory
		}

		th, err := New(sub)
		if err != nil {
			metrics.ThemeLoadErrorsTotal.Inc()
			zap.S().Warnw("theme skipped", "dir", sub, "err", err)
			continue
		}
		metrics.ThemeLoadTotal.Inc()
		themes = append(themes, th)
	}

	sort.Slice(themes, func(i, j int) bool {
		return themes[i].Identifier < themes[j].Identifier
	})
	return themes, nil
}

// PackagedLoader returns a Loader over the themes/ directory under root.
func PackagedLoader(root string) Loader {
	return func() ([]*Theme, error) {
		return LoadFrom(filepath.Join(root, "themes"))
	}
}

// PathsLoader returns a Loader over every configured search path, in order.
// Paths later in the slice contribute later, so the Manager's
// later-loader-wins rule applies inside one PathsLoader, too.
func PathsLoader(paths []string) Loader {
	return func() ([]*Theme, error) {
		var all []*Theme
		for _, p := range paths {
			themes, err := LoadFrom(p)
			if err != nil {
				return nil, err
			}
			all = append(all, themes...)
		}
		return all, nil
	}
}
