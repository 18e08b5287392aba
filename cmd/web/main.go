// cmd/web/main.go
//
// Theming service – HTTP entry point.
//
// Boot sequence
// -------------
//
//  1. Load env vars (jail-wide file → .env fallback).
//
//  2. Load layered config (conf/themes.yaml + THEMES_ env overrides).
//
//  3. Start daily rotating logger (tees to console when running in a TTY).
//
//  4. Build the theme registry from the packaged themes/ directory plus the
//     configured search paths, and refresh it once so boot fails fast on a
//     broken default theme.
//
//  5. Optionally connect MySQL for per-host theme selection, and start the
//     fsnotify watcher when themes.watch is on.
//
//  6. Routes:
//
//     • /_themes/…   – theme static assets (blueprint).
//     • /metrics     – Prometheus.
//     • /*           – pick the host's theme (mobile variant for phones),
//       render home.html through the engine.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/yanizio/themes/internal/blueprint"
	"github.com/yanizio/themes/internal/config"
	"github.com/yanizio/themes/internal/database"
	"github.com/yanizio/themes/internal/logger"
	"github.com/yanizio/themes/internal/middleware"
	"github.com/yanizio/themes/internal/render"
	"github.com/yanizio/themes/internal/server"
	"github.com/yanizio/themes/internal/site"
	"github.com/yanizio/themes/internal/theme"
	"github.com/yanizio/themes/internal/ua"
	"github.com/yanizio/themes/internal/watch"

	"github.com/jmoiron/sqlx"
)

const serverEnvPath = "/usr/local/etc/themes/global.env"

// loadEnv prefers the jail-wide env file; on dev it falls back to .env.
func loadEnv() {
	if _, err := os.Stat(serverEnvPath); err == nil {
		_ = godotenv.Load(serverEnvPath)
		return
	}
	_ = godotenv.Load()
}

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func init() { loadEnv() }

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logOut, err := logger.New(cfg.Paths.Root, runningInTTY())
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}

	//
	// ── 1.  Theme registry ──────────────────────────────────────────────
	//
	mgr := theme.NewManager(cfg.App.Identifier,
		theme.PackagedLoader(cfg.Paths.Root),
		theme.PathsLoader(cfg.Themes.Paths),
	)
	if err := mgr.Refresh(); err != nil {
		logOut.Fatalf("theme discovery: %v", err)
	}
	if _, err := mgr.Get(cfg.Themes.Default); err != nil {
		logOut.Fatalf("default theme %q not registered", cfg.Themes.Default)
	}

	engine := render.New(mgr, cfg.Themes.Templates)

	//
	// ── 2.  Optional per-host theme selection (MySQL) ───────────────────
	//
	var db *sqlx.DB
	if cfg.Database.DSN != "" {
		db, err = database.Open(cfg.Database.DSN)
		if err != nil {
			logOut.Fatalf("connect site DB: %v", err)
		}
		defer db.Close()

		// Early sanity check: count active sites and flag any whose chosen
		// theme never registered, before the first request 500s on it.
		active, missing, err := siteSummary(db, mgr)
		if err != nil {
			logOut.Warnw("site summary failed", "err", err)
		} else {
			logOut.Infow("site DB online", "active_sites", active)
			for _, host := range missing {
				logOut.Warnw("site references unregistered theme", "host", host)
			}
		}
	}

	//
	// ── 3.  Watcher (optional) ──────────────────────────────────────────
	//
	if cfg.Themes.Watch {
		paths := append([]string{filepath.Join(cfg.Paths.Root, "themes")}, cfg.Themes.Paths...)
		w, err := watch.New(mgr, paths)
		if err != nil {
			logOut.Fatalf("start watcher: %v", err)
		}
		go w.Run(context.Background())
	}

	//
	// ── 4.  Routes ──────────────────────────────────────────────────────
	//
	r := chi.NewRouter()
	r.Use(middleware.Security)

	r.Mount(blueprint.MountPath, blueprint.Routes(mgr))
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/*", func(w http.ResponseWriter, req *http.Request) {
		themeID, settings := resolveSite(req, db, cfg)

		data := map[string]any{
			"Themes":   mgr.List(),
			"Settings": settings,
		}
		if err := engine.RenderTheme(w, themeID, "home.html", data); err != nil {
			logOut.Errorw("render error", "theme", themeID, "err", err)
			http.Error(w, "template error", http.StatusInternalServerError)
		}
	})

	//
	// ── 5.  Serve ───────────────────────────────────────────────────────
	//
	var handler http.Handler = r
	if cfg.HTTP.ForceHTTPS {
		handler = middleware.ForceHTTPS(handler)
	}

	srv := server.New(cfg.HTTP.ListenAddr, handler)
	logOut.Infow("listening", "addr", cfg.HTTP.ListenAddr)
	if err := srv.ListenAndServe(); err != nil {
		logOut.Fatalf("http server: %v", err)
	}
}

// resolveSite resolves the theme and theme-setting overrides for one
// request.  With a DB configured it reads the host's site row (mobile
// variant for phone and tablet UAs) plus its settings; otherwise the
// configured default theme applies and the settings map is nil.
func resolveSite(r *http.Request, db *sqlx.DB, cfg *config.Config) (string, map[string]string) {
	if db == nil {
		return cfg.Themes.Default, nil
	}

	rec, err := site.ByHost(r.Context(), db, stripPort(r.Host))
	if err != nil || rec.Theme == "" {
		return cfg.Themes.Default, nil
	}

	settings, err := site.SettingsBySite(r.Context(), db, rec.ID)
	if err != nil {
		zap.S().Warnw("site settings lookup failed", "host", rec.Host, "err", err)
		settings = nil
	}

	if rec.MobileTheme != "" && ua.Parse(r.UserAgent()).IsMobile() {
		return rec.MobileTheme, settings
	}
	return rec.Theme, settings
}

// siteSummary counts active sites and returns the hosts whose selected theme
// is absent from the registry.
func siteSummary(db *sqlx.DB, mgr *theme.Manager) (int, []string, error) {
	recs, err := site.AllActive(db)
	if err != nil {
		return 0, nil, err
	}

	var missing []string
	for _, rec := range recs {
		if rec.Theme == "" {
			continue // site renders the configured default
		}
		if _, err := mgr.Get(rec.Theme); err != nil {
			missing = append(missing, rec.Host)
		}
	}
	return len(recs), missing, nil
}

// stripPort removes any “:port” suffix from the Host header.
func stripPort(h string) string {
	if i := strings.IndexByte(h, ':'); i != -1 {
		return h[:i]
	}
	return h
}
