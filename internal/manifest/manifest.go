package manifest

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/docsmith-dev/docsmith/internal/guide"
)

// Entry is one guide listed in the manifest.
type Entry struct {
	Name    string `yaml:"name"`
	Title   string `yaml:"title"`
	Summary string `yaml:"summary,omitempty"`
}

// Manifest is the parsed docs.yaml: every guide per category, in the order
// the index tables should list them.
type Manifest struct {
	How        []Entry `yaml:"how,omitempty"`
	Understand []Entry `yaml:"understand,omitempty"`
}

// Entries returns the manifest entries for a category.
func (m *Manifest) Entries(c guide.Category) []Entry {
	switch c {
	case guide.CategoryHow:
		return m.How
	case guide.CategoryUnderstand:
		return m.Understand
	}
	return nil
}

// Load reads and validates a manifest file. Schema violations are returned
// as an error listing every issue, not just the first.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse validates raw manifest bytes against the schema and unmarshals them.
func Parse(data []byte, path string) (*Manifest, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating manifest %s: %w", path, err)
	}
	if !result.Valid {
		var msgs []string
		for _, issue := range result.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			msgs = append(msgs, msg)
		}
		return nil, fmt.Errorf("manifest %s is invalid:\n  %s", path, strings.Join(msgs, "\n  "))
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}
