// internal/render/funcs.go
//
// Template helpers.  The func map is rebuilt per parsed set because
// themeStatic and activeTheme close over the theme that is active for the
// current render.  Calling themeStatic with no theme active is a usage
// error; it aborts the render the same way a missing key would.
package render

import (
	"bytes"
	"errors"
	"html/template"

	"github.com/yanizio/themes/internal/blueprint"
)

// ErrNoActiveTheme is returned through template execution when themeStatic
// is used outside a theme render.
var ErrNoActiveTheme = errors.New("no active theme")

func (e *Engine) funcMap(active string) template.FuncMap {
	return template.FuncMap{
		// themeStatic resolves an asset of the active theme to its URL.
		"themeStatic": func(file string) (string, error) {
			if active == "" {
				return "", ErrNoActiveTheme
			}
			return blueprint.StaticURL(active, file), nil
		},

		// activeTheme is the identifier of the active theme, or "".
		"activeTheme": func() string { return active },

		// themeInclude renders another theme's template inline.  Errors are
		// surfaced, not swallowed; a broken include should fail the page.
		"themeInclude": func(themeID, name string) (template.HTML, error) {
			var buf bytes.Buffer
			if err := e.RenderTheme(&buf, themeID, name, nil); err != nil {
				return "", err
			}
			return template.HTML(buf.String()), nil
		},

		// dict builds a map in templates: {{ dict "k" 1 "k2" "v" }}.
		"dict": dict,
	}
}

func dict(kv ...any) map[string]any {
	m := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, _ := kv[i].(string)
		m[key] = kv[i+1]
	}
	return m
}
