// internal/theme/info.go
//
// Descriptor file reader.
//
// Context
// -------
// Every theme directory carries a small `theme.yaml` descriptor.  It is read
// through Koanf (file provider + YAML parser) and unmarshalled into the Info
// struct below, then validated with go-playground/validator so a malformed
// theme fails at discovery time rather than at first render.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`—Koanf ignores `yaml` tags
//     unless configured otherwise.
//   • `application` names the app the theme was built for; the literal “*”
//     marks a theme usable by any application.
//   • Oxford commas, two spaces after periods.

package theme

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
)

// InfoFile is the descriptor file name inside each theme directory.
const InfoFile = "theme.yaml"

// identifierRe constrains identifiers to letter-first word characters, which
// keeps them safe in URLs and template names.
var identifierRe = regexp.MustCompile(`^[a-zA-Z]\w*$`)

// Info mirrors the YAML descriptor.  Only Name and Application are required;
// everything else is presentation metadata.
type Info struct {
	Identifier  string `koanf:"identifier"`
	Name        string `koanf:"name"        validate:"required"`
	Application string `koanf:"application" validate:"required"`
	Author      string `koanf:"author"`
	Description string `koanf:"description"`
	Website     string `koanf:"website"     validate:"omitempty,url"`
	Version     string `koanf:"version"`
}

var v = validator.New()

// readInfo loads and validates one descriptor file.
func readInfo(path string) (*Info, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("read descriptor %s: %w", path, err)
	}

	var info Info
	if err := k.Unmarshal("", &info); err != nil {
		return nil, fmt.Errorf("unmarshal descriptor %s: %w", path, err)
	}
	if err := v.Struct(&info); err != nil {
		return nil, fmt.Errorf("descriptor %s: %w", path, err)
	}
	return &info, nil
}
