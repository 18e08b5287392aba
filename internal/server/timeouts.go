// internal/server/timeouts.go
//
// HTTP server helper with robust timeouts.
//
// The theming service streams small pages and small static assets, so the
// caps can be tight:
//
//   • ReadTimeout   – abort slow-loris headers (10 s)
//   • WriteTimeout  – cap total response time; no asset should take longer (15 s)
//   • IdleTimeout   – close keep-alives on idle clients (60 s)
//
// Centralised here so the entry point stays declarative.
//

package server

import (
	"net/http"
	"time"
)

// Timeout defaults applied by New.
const (
	ReadTimeout  = 10 * time.Second
	WriteTimeout = 15 * time.Second
	IdleTimeout  = 60 * time.Second
)

// New constructs an *http.Server with the defaults above.  Callers may still
// inject TLSConfig (e.g., autocert) before serving.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
		IdleTimeout:  IdleTimeout,
	}
}
