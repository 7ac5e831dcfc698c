// Package guide defines the category taxonomy and path rules for guide files.
// A guide is identified by (category, name); the category determines its
// directory and scaffold template. Categories form a closed set — strings are
// parsed into the Category type once, at the CLI boundary, and invalid values
// never travel further.
package guide

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// Category is the top-level grouping for a guide.
type Category string

const (
	// CategoryHow holds mechanics references: commands, flags, recipes.
	CategoryHow Category = "how"

	// CategoryUnderstand holds mental-model guides: concepts and worked examples.
	CategoryUnderstand Category = "understand"
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{CategoryHow, CategoryUnderstand}
}

// CategoryNames returns the valid category strings for usage messages.
func CategoryNames() []string {
	cats := Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return names
}

// ParseCategory converts a CLI argument into a Category.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if s == string(c) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q (valid categories: %s)",
		ErrUnknownCategory, s, strings.Join(CategoryNames(), ", "))
}

// Dir returns the directory name for the category, relative to the repo root.
func (c Category) Dir() string {
	return string(c)
}

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// ValidateName checks that a guide name is usable as a filename stem.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidName)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q must match pattern [a-z0-9][a-z0-9-]*", ErrInvalidName, name)
	}
	return nil
}

// Path returns the guide's file path under root.
func Path(root string, c Category, name string) string {
	return filepath.Join(root, c.Dir(), name+".md")
}

// Title derives the in-file heading from a guide name by upper-casing the
// first rune. "rebase-strategies" becomes "Rebase-strategies".
func Title(name string) string {
	if name == "" {
		return name
	}
	r := []rune(name)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
