// internal/server/timeouts_test.go
//
// Run: go test ./internal/server -v

package server

import (
	"net/http"
	"testing"
)

func TestNewAppliesTimeouts(t *testing.T) {
	srv := New(":8080", http.NotFoundHandler())

	if srv.Addr != ":8080" {
		t.Fatalf("Addr = %q, want :8080", srv.Addr)
	}
	if srv.ReadTimeout != ReadTimeout ||
		srv.WriteTimeout != WriteTimeout ||
		srv.IdleTimeout != IdleTimeout {
		t.Fatalf("timeouts = %v/%v/%v, want %v/%v/%v",
			srv.ReadTimeout, srv.WriteTimeout, srv.IdleTimeout,
			ReadTimeout, WriteTimeout, IdleTimeout)
	}
}
