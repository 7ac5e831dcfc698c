package manifest

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/docsmith-dev/docsmith/internal/guide"
)

// Marker comments delimiting the generated index tables inside an index
// document. Text outside the markers is never touched.
const (
	MarkerStart = "<!-- docsmith:index:start -->"
	MarkerEnd   = "<!-- docsmith:index:end -->"
)

// ErrNoMarkers is returned when an index target has no marker comments.
// Such documents are maintained by hand and must not be rewritten.
var ErrNoMarkers = errors.New("no index markers")

var categoryHeadings = map[guide.Category]string{
	guide.CategoryHow:        "How-to guides",
	guide.CategoryUnderstand: "Mental models",
}

// RenderIndex renders the per-category index tables for a manifest.
func RenderIndex(m *Manifest) string {
	var b strings.Builder
	for _, c := range guide.Categories() {
		entries := m.Entries(c)
		if len(entries) == 0 {
			continue
		}
		fmt.Fprintf(&b, "### %s\n\n", categoryHeadings[c])
		b.WriteString("| Guide | Summary |\n")
		b.WriteString("| ----- | ------- |\n")
		for _, e := range entries {
			fmt.Fprintf(&b, "| [%s](%s/%s.md) | %s |\n", e.Title, c.Dir(), e.Name, e.Summary)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// UpdateIndex rewrites the generated section of one index document from the
// manifest. It reports whether the file changed. Documents without markers
// return ErrNoMarkers untouched.
func UpdateIndex(path string, m *Manifest) (bool, error) {
	updated, changed, err := renderInto(path, m)
	if err != nil {
		return false, err
	}
	if !changed {
		return false, nil
	}
	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}

// CheckIndex reports whether one index document's generated section is
// current with the manifest. It never writes.
func CheckIndex(path string, m *Manifest) (bool, error) {
	_, changed, err := renderInto(path, m)
	if err != nil {
		return false, err
	}
	return !changed, nil
}

// renderInto splices the rendered tables between the markers of the document
// at path and reports whether that differs from what is on disk.
func renderInto(path string, m *Manifest) (updated string, changed bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", path, err)
	}
	content := string(data)

	start := strings.Index(content, MarkerStart)
	end := strings.Index(content, MarkerEnd)
	if start < 0 || end < 0 || end < start {
		return "", false, fmt.Errorf("%w in %s", ErrNoMarkers, path)
	}

	head := content[:start+len(MarkerStart)]
	tail := content[end:]
	updated = head + "\n\n" + RenderIndex(m) + "\n\n" + tail
	return updated, updated != content, nil
}
