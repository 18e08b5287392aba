// internal/theme/theme_test.go
//
// Unit-tests for the Theme descriptor reader.
//
// Fixtures live under testdata/themes; they mirror the layout discovery
// expects in production: one directory per theme, each with a theme.yaml
// descriptor and optional templates/, static/, and license.txt.
//
// Run: go test ./internal/theme -v

package theme

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	dir := filepath.Join("testdata", "themes", "cool")

	cool, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	abs, _ := filepath.Abs(dir)
	if cool.Identifier != "cool" {
		t.Errorf("Identifier = %q, want %q", cool.Identifier, "cool")
	}
	if cool.Name != "Cool Blue v1" {
		t.Errorf("Name = %q, want %q", cool.Name, "Cool Blue v1")
	}
	if cool.Application != "testing" {
		t.Errorf("Application = %q, want %q", cool.Application, "testing")
	}
	if cool.Path != abs {
		t.Errorf("Path = %q, want %q", cool.Path, abs)
	}
	if want := filepath.Join(abs, "static"); cool.StaticPath != want {
		t.Errorf("StaticPath = %q, want %q", cool.StaticPath, want)
	}
	if want := filepath.Join(abs, "templates"); cool.TemplatesPath != want {
		t.Errorf("TemplatesPath = %q, want %q", cool.TemplatesPath, want)
	}
	if cool.LicenseText != "" {
		t.Errorf("LicenseText = %q, want empty", cool.LicenseText)
	}
}

func TestLicenseText(t *testing.T) {
	plain, err := New(filepath.Join("testdata", "themes", "plain"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := strings.TrimSpace(plain.LicenseText); got != "The license." {
		t.Fatalf("LicenseText = %q, want %q", got, "The license.")
	}
}

func TestNewMissingDescriptor(t *testing.T) {
	if _, err := New(filepath.Join("testdata", "themes", "noinfo")); err == nil {
		t.Fatal("New on a directory without a descriptor should fail")
	}
}

func TestNewIdentifierMismatch(t *testing.T) {
	_, err := New(filepath.Join("testdata", "mismatch", "wrongid"))
	if err == nil {
		t.Fatal("descriptor identifier disagreeing with directory should fail")
	}
	if !strings.Contains(err.Error(), "does not match") {
		t.Fatalf("unexpected error: %v", err)
	}
}
