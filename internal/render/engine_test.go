// internal/render/engine_test.go
//
// Unit-tests for the render engine: override chain, active-theme helpers,
// the no-active-theme guard, and cross-theme includes.
//
// Fixtures
// --------
// testdata/app holds the application's own templates (final fallback);
// testdata/themes holds two registered themes.  cool overrides hello.html,
// active.html, and static.html; plain ships only static.html, so everything
// else falls back to the application.
//
// Run: go test ./internal/render -v

package render

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yanizio/themes/internal/theme"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	mgr := theme.NewManager("testing",
		theme.PathsLoader([]string{filepath.Join("testdata", "themes")}))
	if err := mgr.Refresh(); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	return New(mgr, filepath.Join("testdata", "app"))
}

func renderTheme(t *testing.T, e *Engine, themeID, name string) string {
	t.Helper()
	var buf bytes.Buffer
	if err := e.RenderTheme(&buf, themeID, name, nil); err != nil {
		t.Fatalf("RenderTheme(%s, %s): %v", themeID, name, err)
	}
	return strings.TrimSpace(buf.String())
}

func TestExists(t *testing.T) {
	e := testEngine(t)

	cases := []struct {
		name string
		want bool
	}{
		{"hello.html", true},
		{"_themes/cool/hello.html", true},
		{"_themes/plain/hello.html", false},
		{"_themes/missing/hello.html", false},
		{"nope.html", false},
	}
	for _, c := range cases {
		if got := e.Exists(c.name); got != c.want {
			t.Errorf("Exists(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestRenderThemeOverrideAndFallback(t *testing.T) {
	e := testEngine(t)

	if got := renderTheme(t, e, "cool", "hello.html"); got != "Hello from Cool Blue v2." {
		t.Fatalf("cool hello = %q", got)
	}
	// plain ships no hello.html, so the application template renders.
	if got := renderTheme(t, e, "plain", "hello.html"); got != "Hello from the application" {
		t.Fatalf("plain hello = %q", got)
	}
}

func TestRenderThemeUnknownTheme(t *testing.T) {
	e := testEngine(t)
	var buf bytes.Buffer
	if err := e.RenderTheme(&buf, "missing", "hello.html", nil); !errors.Is(err, theme.ErrNotFound) {
		t.Fatalf("err = %v, want theme.ErrNotFound", err)
	}
}

func TestActiveTheme(t *testing.T) {
	e := testEngine(t)

	var buf bytes.Buffer
	if err := e.Render(&buf, "active.html", nil); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "Application, Active theme: none" {
		t.Fatalf("app active = %q", got)
	}

	if got := renderTheme(t, e, "cool", "active.html"); got != "Cool Blue v2, Active theme: cool" {
		t.Fatalf("cool active = %q", got)
	}
	// plain falls back to the app template but keeps its active theme.
	if got := renderTheme(t, e, "plain", "active.html"); got != "Application, Active theme: plain" {
		t.Fatalf("plain active = %q", got)
	}
}

func TestThemeStatic(t *testing.T) {
	e := testEngine(t)

	if got := renderTheme(t, e, "cool", "static.html"); got != "Cool Blue v2, /_themes/cool/style.css" {
		t.Fatalf("cool static = %q", got)
	}
}

func TestThemeStaticOutsideTheme(t *testing.T) {
	e := testEngine(t)

	var buf bytes.Buffer
	err := e.Render(&buf, "static.html", nil)
	if err == nil {
		t.Fatal("themeStatic outside a theme render must fail")
	}
	if !strings.Contains(err.Error(), "no active theme") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestThemeIncludeStatic(t *testing.T) {
	e := testEngine(t)

	var buf bytes.Buffer
	if err := e.Render(&buf, "static_parent.html", nil); err != nil {
		t.Fatalf("Render: %v", err)
	}
	got := strings.Join(strings.Fields(buf.String()), " ")
	if got != "Application, Plain, /_themes/plain/style.css" {
		t.Fatalf("static_parent = %q", got)
	}
}

func TestParsedSetReuse(t *testing.T) {
	e := testEngine(t)

	// Two renders of the same logical name share one parsed set.
	renderTheme(t, e, "cool", "hello.html")
	n := e.lru.Len()
	renderTheme(t, e, "cool", "hello.html")
	if e.lru.Len() != n {
		t.Fatalf("cache grew on a repeat render: %d → %d", n, e.lru.Len())
	}

	// A refresh bumps the generation, so the same render re-parses.
	if err := e.mgr.Refresh(); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	renderTheme(t, e, "cool", "hello.html")
	if e.lru.Len() != n+1 {
		t.Fatalf("cache should grow after refresh: %d → %d", n, e.lru.Len())
	}
}
