package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	root := t.TempDir()

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.FormatterBin != "prettier" {
		t.Errorf("FormatterBin = %q, want prettier", cfg.FormatterBin)
	}
	if cfg.StructuralBin != "markdownlint-cli2" {
		t.Errorf("StructuralBin = %q, want markdownlint-cli2", cfg.StructuralBin)
	}
	if cfg.ProseBin != "vale" {
		t.Errorf("ProseBin = %q, want vale", cfg.ProseBin)
	}
	if len(cfg.DocGlobs) != 1 || cfg.DocGlobs[0] != "**/*.md" {
		t.Errorf("DocGlobs = %v, want [**/*.md]", cfg.DocGlobs)
	}
	if cfg.ManifestPath != "docs.yaml" {
		t.Errorf("ManifestPath = %q, want docs.yaml", cfg.ManifestPath)
	}
	if len(cfg.StyleInclude) != 2 {
		t.Errorf("StyleInclude = %v, want the two index documents", cfg.StyleInclude)
	}
}

func TestLoadFromFile(t *testing.T) {
	root := t.TempDir()
	raw := `
tools:
  formatter: /opt/bin/prettier
  min_versions:
    prettier: "3.0.0"
    vale: "3.4.0"
style:
  include:
    - README.md
    - GUIDE.md
    - how/commit-messages.md
`
	if err := os.WriteFile(FilePath(root), []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.FormatterBin != "/opt/bin/prettier" {
		t.Errorf("FormatterBin = %q, want override", cfg.FormatterBin)
	}
	// Unset keys keep their defaults.
	if cfg.ProseBin != "vale" {
		t.Errorf("ProseBin = %q, want default vale", cfg.ProseBin)
	}
	if got := cfg.MinVersions["prettier"]; got != "3.0.0" {
		t.Errorf("MinVersions[prettier] = %q, want 3.0.0", got)
	}
	if len(cfg.StyleInclude) != 3 {
		t.Errorf("StyleInclude = %v, want 3 entries", cfg.StyleInclude)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(FilePath(root), []byte("tools: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(root); err == nil {
		t.Fatal("Load() succeeded on malformed YAML, want error")
	}
}

func TestSetThenGet(t *testing.T) {
	root := t.TempDir()

	if err := Set(root, "tools.prose", "/usr/local/bin/vale"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	got, err := Get(root, "tools.prose")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got != "/usr/local/bin/vale" {
		t.Errorf("Get() = %q, want the value just set", got)
	}

	if _, err := os.Stat(filepath.Join(root, ".docsmith.yaml")); err != nil {
		t.Errorf("config file not created: %v", err)
	}
}
