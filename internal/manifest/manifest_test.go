package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/docsmith-dev/docsmith/internal/guide"
)

const sampleManifest = `
how:
  - name: rebase-strategies
    title: Rebase strategies
    summary: When to rebase, when to merge.
  - name: cherry-pick
    title: Cherry-picking commits
understand:
  - name: branching-model
    title: The branching model
    summary: Why branches are cheap.
`

func TestLoad(t *testing.T) {
	path := writeManifest(t, sampleManifest)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if len(m.How) != 2 {
		t.Errorf("got %d how entries, want 2", len(m.How))
	}
	if len(m.Understand) != 1 {
		t.Errorf("got %d understand entries, want 1", len(m.Understand))
	}
	if m.How[0].Name != "rebase-strategies" {
		t.Errorf("How[0].Name = %q", m.How[0].Name)
	}
	if m.How[1].Summary != "" {
		t.Errorf("How[1].Summary = %q, want empty (optional field)", m.How[1].Summary)
	}
}

func TestLoadEmptyManifest(t *testing.T) {
	path := writeManifest(t, "")
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load() on empty manifest: %v", err)
	}
	if len(m.How) != 0 || len(m.Understand) != 0 {
		t.Error("empty manifest should have no entries")
	}
}

func TestEntries(t *testing.T) {
	m := &Manifest{
		How:        []Entry{{Name: "a", Title: "A"}},
		Understand: []Entry{{Name: "b", Title: "B"}, {Name: "c", Title: "C"}},
	}
	if got := m.Entries(guide.CategoryHow); len(got) != 1 {
		t.Errorf("Entries(how) = %d entries, want 1", len(got))
	}
	if got := m.Entries(guide.CategoryUnderstand); len(got) != 2 {
		t.Errorf("Entries(understand) = %d entries, want 2", len(got))
	}
}

func TestValidateRejectsBadEntries(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing title", "how:\n  - name: rebase\n"},
		{"bad name pattern", "how:\n  - name: Has Spaces\n    title: T\n"},
		{"unknown category", "why:\n  - name: a\n    title: T\n"},
		{"unknown entry field", "how:\n  - name: a\n    title: T\n    author: me\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Validate() error: %v", err)
			}
			if result.Valid {
				t.Fatalf("manifest accepted, want schema violation:\n%s", tt.yaml)
			}
			if len(result.Issues) == 0 {
				t.Error("invalid result carries no issues")
			}
		})
	}
}

func TestParseInvalidReportsEveryIssue(t *testing.T) {
	raw := "how:\n  - name: First Bad\n    title: T\n  - name: second-ok\n"
	_, err := Parse([]byte(raw), "docs.yaml")
	if err == nil {
		t.Fatal("Parse() accepted invalid manifest")
	}
	msg := err.Error()
	if !strings.Contains(msg, "/how/0") || !strings.Contains(msg, "/how/1") {
		t.Errorf("error should report both entries' issues, got:\n%s", msg)
	}
}

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "docs.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
