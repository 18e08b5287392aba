// internal/blueprint/blueprint_test.go
//
// Unit-tests for the static-asset routes.
//
// Each sub-test mounts Routes under MountPath on a chi router, fires an
// httptest request, and asserts status and body.  StaticURL is checked
// against the live route so the URL builder and the route definition can
// never drift apart.
//
// Run: go test ./internal/blueprint -v

package blueprint

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/yanizio/themes/internal/theme"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	mgr := theme.NewManager("testing",
		theme.PathsLoader([]string{filepath.Join("testdata", "themes")}))
	if err := mgr.Refresh(); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	r := chi.NewRouter()
	r.Mount(MountPath, Routes(mgr))
	return r
}

func TestStaticURLServesAsset(t *testing.T) {
	r := testRouter(t)

	url := StaticURL("cool", "style.css")
	if url != "/_themes/cool/style.css" {
		t.Fatalf("StaticURL = %q", url)
	}

	req := httptest.NewRequest(http.MethodGet, url, nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if got := strings.TrimSpace(rr.Body.String()); got != "body { background: #00c; }" {
		t.Fatalf("body = %q", got)
	}
}

func TestNestedAsset(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, StaticURL("cool", "css/extra.css"), nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
}

func TestUnknownTheme(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/_themes/missing/style.css", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}

func TestEmptyAssetPath(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/_themes/cool/", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestTraversalStaysInsideStaticTree(t *testing.T) {
	r := testRouter(t)

	// The cleaned path lands on static/theme.yaml, which does not exist;
	// the descriptor outside static/ must never be reachable.
	req := httptest.NewRequest(http.MethodGet, "/_themes/cool/css/../../theme.yaml", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code == http.StatusOK {
		t.Fatalf("traversal escaped the static tree: %d %q", rr.Code, rr.Body.String())
	}
}

func TestCleanRelative(t *testing.T) {
	cases := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"style.css", "style.css", true},
		{"css/extra.css", "css/extra.css", true},
		{"./css//extra.css", "css/extra.css", true},
		{"css/../style.css", "style.css", true},
		{"../../theme.yaml", "theme.yaml", true}, // neutralised, stays inside
		{"..", "", false},
		{"", "", false},
		{".", "", false},
		{"//", "", false},
	}
	for _, c := range cases {
		got, ok := cleanRelative(c.raw)
		if got != c.want || ok != c.ok {
			t.Errorf("cleanRelative(%q) = (%q, %v), want (%q, %v)",
				c.raw, got, ok, c.want, c.ok)
		}
	}
}
