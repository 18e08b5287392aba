// internal/config/model.go
//
// Typed configuration model for the theming service.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `.env`                          – dotenv values,
//   • `conf/themes.yaml`                       – primary static file,
//   • `THEMES_`-prefixed environment overrides – highest precedence.
//
// Any value whose string begins with the prefix `vault:` is resolved
// through the Vault client after the overlay merge, so the model never
// stores Vault URIs—only plain strings.
//
// Validation happens immediately after unmarshal; the app fails fast if
// required fields are missing.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`—Koanf ignores `yaml` tags
//     unless configured otherwise.
//   • The `Paths` block is filled at runtime; YAML must not try to set it.
//   • Oxford commas, two spaces after periods.  No em-dash.

package config

//
// App section
//

// App identifies this application to the theme registry.  Themes declare
// which application they were built for; only matching (or wildcard) themes
// are admitted.
type App struct {
	Identifier string `koanf:"identifier" validate:"required"`
}

//
// HTTP section
//

// HTTP holds web-server tunables.
type HTTP struct {
	ListenAddr string `koanf:"listen_addr" validate:"required,hostname_port"`
	ForceHTTPS bool   `koanf:"force_https"`
}

//
// Themes section
//

// Themes configures discovery and rendering.
//
//   - Paths     – operator search paths, scanned after the packaged themes
//     directory, so they override it (THEME_PATHS analogue).
//   - Default   – identifier rendered when a site does not pick one.
//   - Templates – the application's own templates directory, the final
//     fallback in every lookup chain.
//   - Watch     – rebuild the registry when a search path changes on disk.
type Themes struct {
	Paths     []string `koanf:"paths"`
	Default   string   `koanf:"default" validate:"required"`
	Templates string   `koanf:"templates"`
	Watch     bool     `koanf:"watch"`
}

//
// Database section
//

// Database is optional: when DSN is set, per-host theme selection is read
// from the `site` table.  The password portion may be a `vault:` reference.
type Database struct {
	DSN string `koanf:"dsn"`
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime—never set in YAML or env.  The loader
// discovers `Root` (repo root or THEMES_ROOT override) so later code can
// build absolute file paths.
type Paths struct {
	Root string // THEMES_ROOT or discovered parent
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads throughout the app lifetime.
type Config struct {
	App      App      `koanf:"app"`
	HTTP     HTTP     `koanf:"http"`
	Themes   Themes   `koanf:"themes"`
	Database Database `koanf:"database"`
	Paths    Paths    `koanf:"-"` // not loaded from config files
}
