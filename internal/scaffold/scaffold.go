package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/docsmith-dev/docsmith/internal/guide"
)

//go:embed templates
var templateFS embed.FS

// Data holds the template variables available to guide templates.
type Data struct {
	Name  string // e.g., "rebase-strategies"
	Title string // Derived: first rune upper-cased, e.g., "Rebase-strategies"
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	Path     string
	Category guide.Category
}

// Create generates a new guide file from the category's template. The target
// path is <root>/<category dir>/<name>.md. It returns guide.ErrExists if the
// target is already on disk; authored content is never overwritten.
func Create(root, name string, category guide.Category) (*Result, error) {
	if err := guide.ValidateName(name); err != nil {
		return nil, err
	}

	target := guide.Path(root, category, name)
	if _, err := os.Stat(target); err == nil {
		return nil, fmt.Errorf("%w: %s", guide.ErrExists, target)
	}

	body, err := render(name, category)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return nil, fmt.Errorf("creating category directory: %w", err)
	}

	// O_EXCL closes the stat-then-write window: if the file appeared in the
	// meantime the write fails instead of clobbering it.
	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return nil, fmt.Errorf("%w: %s", guide.ErrExists, target)
		}
		return nil, fmt.Errorf("writing %s: %w", target, err)
	}
	if _, err := f.Write(body); err != nil {
		f.Close()
		return nil, fmt.Errorf("writing %s: %w", target, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("writing %s: %w", target, err)
	}

	return &Result{Path: target, Category: category}, nil
}

// render executes the category's embedded template for the given name.
func render(name string, category guide.Category) ([]byte, error) {
	tmplPath := filepath.Join("templates", string(category)+".md.tmpl")
	tmplBytes, err := templateFS.ReadFile(tmplPath)
	if err != nil {
		return nil, fmt.Errorf("template for category %q not found: %w", category, err)
	}

	tmpl, err := template.New(string(category)).Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", tmplPath, err)
	}

	data := &Data{Name: name, Title: guide.Title(name)}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", tmplPath, err)
	}
	return buf.Bytes(), nil
}
