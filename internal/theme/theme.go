// Package theme holds the data structures that describe one theme package
// on disk, plus the loaders and the registry that track them.  A Theme
// combines:
//
//   - Identifier     – the theme directory name (for example, “cool”).
//   - Name           – human-readable display name from the descriptor.
//   - Application    – identifier of the owning application, or “*”.
//   - Path           – absolute path to the theme directory.
//   - StaticPath     – <path>/static, served under /_themes/<id>/.
//   - TemplatesPath  – <path>/templates, consulted by the render engine.
//
// Template parsing and URL construction live elsewhere (internal/render and
// internal/blueprint); this package only describes and registers themes.
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LicenseFile is the optional plain-text license shipped inside a theme.
const LicenseFile = "license.txt"

// Theme is one discovered theme package.  Instances are immutable after New
// returns; the Manager replaces whole maps rather than mutating entries.
type Theme struct {
	// Identity.
	Identifier  string
	Name        string
	Application string

	// Descriptor extras (optional in theme.yaml).
	Author      string
	Description string
	Website     string
	Version     string

	// Filesystem layout.
	Path          string
	StaticPath    string
	TemplatesPath string

	// LicenseText is the verbatim content of license.txt, or "" when the
	// theme ships none.
	LicenseText string
}

// New reads the descriptor in dir and returns the resulting Theme.  The
// identifier is always the directory base name; a descriptor that carries an
// explicit identifier must agree with it.
func New(dir string) (*Theme, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("theme path %s: %w", dir, err)
	}

	info, err := readInfo(filepath.Join(abs, InfoFile))
	if err != nil {
		return nil, err
	}

	id := filepath.Base(abs)
	if !identifierRe.MatchString(id) {
		return nil, fmt.Errorf("theme directory %q is not a valid identifier", id)
	}
	if info.Identifier != "" && info.Identifier != id {
		return nil, fmt.Errorf("descriptor identifier %q does not match directory %q",
			info.Identifier, id)
	}

	th := &Theme{
		Identifier:    id,
		Name:          info.Name,
		Application:   info.Application,
		Author:        info.Author,
		Description:   info.Description,
		Website:       info.Website,
		Version:       info.Version,
		Path:          abs,
		StaticPath:    filepath.Join(abs, "static"),
		TemplatesPath: filepath.Join(abs, "templates"),
	}

	// License text is best-effort; absence is not an error.
	if raw, err := os.ReadFile(filepath.Join(abs, LicenseFile)); err == nil {
		th.LicenseText = string(raw)
	}

	return th, nil
}

// String implements fmt.Stringer for log lines.
func (t *Theme) String() string {
	return strings.Join([]string{t.Identifier, t.Name}, " – ")
}
