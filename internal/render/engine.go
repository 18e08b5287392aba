// internal/render/engine.go
//
// Template engine: logical-name lookup, theme override chain, func-map
// injection, and an LRU of parsed *template.Template* sets.
//
// Public helpers
// --------------
//   - Render      – execute an application template (no active theme).
//   - RenderTheme – execute with a theme active; theme templates win.
//   - Exists      – report whether a logical name resolves to a file.
//
// Logical names
// -------------
// A plain name ("hello.html") resolves against the application templates
// directory.  A prefixed name ("_themes/cool/hello.html") resolves against
// that theme's templates directory.  RenderTheme first tries the prefixed
// form and falls back to the application template, so a theme only has to
// ship the templates it actually overrides.
//
// All templates in the same directory are parsed as one set so sub-templates
// ({{ template "row" . }}) work out-of-the-box.  Parsed sets are cached per
// (registry generation, active theme, logical name); bumping the generation
// on refresh invalidates every stale set at once.
//
// Style
// -----
// • Oxford commas, two spaces after periods.

package render

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/yanizio/themes/internal/cache"
	"github.com/yanizio/themes/internal/metrics"
	"github.com/yanizio/themes/internal/theme"
)

// ThemePrefix marks logical names that address one theme's template tree.
const ThemePrefix = "_themes/"

// Parsed template sets; tweak capacity when perf-testing.
const lruCapacity = 1024

// Engine answers template lookups for one application.
type Engine struct {
	mgr    *theme.Manager
	appDir string

	mu  sync.Mutex
	lru *cache.LRU[string, *template.Template]
}

// New builds an Engine over mgr with appDir as the application's own
// templates directory (the final fallback in the chain).
func New(mgr *theme.Manager, appDir string) *Engine {
	return &Engine{
		mgr:    mgr,
		appDir: appDir,
		lru:    cache.New[string, *template.Template](lruCapacity),
	}
}

//
// public helpers
//

// Render executes an application template with no active theme.  Template
// code that calls themeStatic fails, which is the intended guard: asset URLs
// are meaningless outside a theme.
func (e *Engine) Render(w io.Writer, name string, data any) error {
	return e.execute(w, name, "", data)
}

// RenderTheme executes name with themeID active.  The theme's own template
// is preferred; the application template is the fallback.  Unknown themes
// return theme.ErrNotFound.
func (e *Engine) RenderTheme(w io.Writer, themeID, name string, data any) error {
	if _, err := e.mgr.Get(themeID); err != nil {
		return err
	}
	logical := ThemePrefix + themeID + "/" + name
	if !e.Exists(logical) {
		logical = name
	}
	return e.execute(w, logical, themeID, data)
}

// Exists reports whether the logical name resolves to a template file.
func (e *Engine) Exists(name string) bool {
	p, err := e.resolve(name)
	if err != nil {
		return false
	}
	fi, err := os.Stat(p)
	return err == nil && !fi.IsDir()
}

//
// internal: resolve, load, execute
//

// resolve maps a logical name to a concrete file path.
func (e *Engine) resolve(name string) (string, error) {
	if rest, ok := strings.CutPrefix(name, ThemePrefix); ok {
		id, file, ok := strings.Cut(rest, "/")
		if !ok {
			return "", fmt.Errorf("malformed theme template name %q", name)
		}
		th, err := e.mgr.Get(id)
		if err != nil {
			return "", err
		}
		return filepath.Join(th.TemplatesPath, filepath.FromSlash(file)), nil
	}
	return filepath.Join(e.appDir, filepath.FromSlash(name)), nil
}

func (e *Engine) execute(w io.Writer, logical, active string, data any) error {
	t, err := e.load(logical, active)
	if err != nil {
		return err
	}
	metrics.TemplateRenderTotal.Inc()
	return t.ExecuteTemplate(w, execName(t, path.Base(logical)), data)
}

// load finds and (if necessary) parses the template set behind one logical
// name.  The whole directory is parsed as one set; the active theme is baked
// into the func map, so the cache key carries it.
func (e *Engine) load(logical, active string) (*template.Template, error) {
	key := strings.Join([]string{
		fmt.Sprint(e.mgr.Generation()), active, logical,
	}, "::")

	e.mu.Lock()
	t, hit := e.lru.Get(key)
	e.mu.Unlock()
	if hit {
		return t, nil
	}

	file, err := e.resolve(logical)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(file); err != nil {
		return nil, fmt.Errorf("template %s: %w", logical, err)
	}

	base := path.Base(logical)
	t, err = template.New(base).
		Funcs(e.funcMap(active)).
		ParseGlob(filepath.Join(filepath.Dir(file), "*.html"))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", logical, err)
	}

	e.mu.Lock()
	e.lru.Add(key, t)
	e.mu.Unlock()
	return t, nil
}

//
// helpers
//

// execName picks the template name to execute.
//
// Priority:
//  1. If the set has "<name>" (file-based template), run that.
//  2. Otherwise, fall back to "<name>" minus the extension (root template
//     defined via {{ define }}).
func execName(t *template.Template, name string) string {
	if tmpl := t.Lookup(name); tmpl != nil {
		return name
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}
