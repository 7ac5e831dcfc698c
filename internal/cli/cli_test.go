package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/docsmith-dev/docsmith/internal/guide"
)

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestNewCommandCreatesGuide(t *testing.T) {
	root := t.TempDir()

	if err := runCommand(t, "--root", root, "new", "rebase-strategies", "how"); err != nil {
		t.Fatalf("new command error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "how", "rebase-strategies.md"))
	if err != nil {
		t.Fatalf("scaffolded file missing: %v", err)
	}
	if !strings.Contains(string(data), "# Rebase-strategies") {
		t.Errorf("scaffolded file missing title:\n%s", data)
	}
}

func TestNewCommandRefusesSecondRun(t *testing.T) {
	root := t.TempDir()

	if err := runCommand(t, "--root", root, "new", "cherry-pick", "how"); err != nil {
		t.Fatalf("first run error: %v", err)
	}
	err := runCommand(t, "--root", root, "new", "cherry-pick", "how")
	if !errors.Is(err, guide.ErrExists) {
		t.Fatalf("second run error = %v, want guide.ErrExists", err)
	}
}

func TestNewCommandRejectsUnknownCategory(t *testing.T) {
	root := t.TempDir()

	err := runCommand(t, "--root", root, "new", "rebase", "recipes")
	if !errors.Is(err, guide.ErrUnknownCategory) {
		t.Fatalf("error = %v, want guide.ErrUnknownCategory", err)
	}
	// Nothing may be written before the category parse fails.
	entries, readErr := os.ReadDir(root)
	if readErr != nil {
		t.Fatal(readErr)
	}
	if len(entries) != 0 {
		t.Errorf("unexpected files created: %v", entries)
	}
}

func TestNewCommandMissingArgsPrintsUsage(t *testing.T) {
	err := runCommand(t, "--root", t.TempDir(), "new", "only-a-name")
	if err == nil {
		t.Fatal("expected usage error")
	}
	if !strings.Contains(err.Error(), "usage:") {
		t.Errorf("error %q does not carry the usage string", err)
	}
}
