// internal/middleware/security_test.go
//
// Unit-tests for the security-header middleware.
//
// The critical property: headers must be on the wire even when the wrapped
// handler writes a body immediately, because the header map freezes at the
// first Write.
//
// Run: go test ./internal/middleware -v

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSecurityHeadersSentWithBody(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("hello"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	Security(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	for name, want := range defaults {
		if got := rr.Header().Get(name); got != want {
			t.Errorf("%s = %q, want %q", name, got, want)
		}
	}
}

func TestSecurityHandlerOverrideWins(t *testing.T) {
	const custom = "default-src 'none'"
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Security-Policy", custom)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	Security(next).ServeHTTP(rr, req)

	if got := rr.Header().Get("Content-Security-Policy"); got != custom {
		t.Fatalf("CSP = %q, want handler override %q", got, custom)
	}
}
