package guide

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"how", CategoryHow, false},
		{"understand", CategoryUnderstand, false},
		{"", "", true},
		{"How", "", true},
		{"why", "", true},
		{"how ", "", true},
	}

	for _, tt := range tests {
		got, err := ParseCategory(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseCategory(%q) = %q, want error", tt.in, got)
			} else if !errors.Is(err, ErrUnknownCategory) {
				t.Errorf("ParseCategory(%q) error = %v, want ErrUnknownCategory", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCategory(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseCategoryErrorListsValidSet(t *testing.T) {
	_, err := ParseCategory("wat")
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	for _, want := range []string{"how", "understand"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q does not mention %q", msg, want)
		}
	}
}

func TestValidateName(t *testing.T) {
	valid := []string{"rebase-strategies", "a", "git2", "cherry-pick"}
	for _, name := range valid {
		if err := ValidateName(name); err != nil {
			t.Errorf("ValidateName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{"", "-leading", "Has-Caps", "under_score", "spa ce", "dot.md"}
	for _, name := range invalid {
		if err := ValidateName(name); err == nil {
			t.Errorf("ValidateName(%q) = nil, want error", name)
		} else if !errors.Is(err, ErrInvalidName) {
			t.Errorf("ValidateName(%q) error = %v, want ErrInvalidName", name, err)
		}
	}
}

func TestPath(t *testing.T) {
	got := Path("/repo", CategoryHow, "rebase-strategies")
	want := filepath.Join("/repo", "how", "rebase-strategies.md")
	if got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}

	got = Path(".", CategoryUnderstand, "branching")
	want = filepath.Join("understand", "branching.md")
	if got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
}

func TestTitle(t *testing.T) {
	tests := []struct{ in, want string }{
		{"rebase-strategies", "Rebase-strategies"},
		{"a", "A"},
		{"", ""},
		{"3-way-merge", "3-way-merge"},
	}
	for _, tt := range tests {
		if got := Title(tt.in); got != tt.want {
			t.Errorf("Title(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
