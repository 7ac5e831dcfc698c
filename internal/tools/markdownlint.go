package tools

import (
	"context"
	"io"
)

// Markdownlint lints markdown structure via the markdownlint-cli2 binary.
type Markdownlint struct {
	// Bin is the binary name or path. Defaults to "markdownlint-cli2" when empty.
	Bin string
	// Config is the path to the checked-in lint configuration. Optional;
	// markdownlint-cli2 auto-discovers its config when empty.
	Config string
	// Dir is the working directory for invocations (the repo root).
	Dir string
	// Stdout and Stderr can be set for testing; default to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

func (m *Markdownlint) bin() string {
	if m.Bin == "" {
		return "markdownlint-cli2"
	}
	return m.Bin
}

// Run lints the given globs against the repo's markdownlint configuration.
func (m *Markdownlint) Run(ctx context.Context, paths []string) (*Output, error) {
	var args []string
	if m.Config != "" {
		args = append(args, "--config", m.Config)
	}
	args = append(args, paths...)
	return run(ctx, m.bin(), args, m.Dir, m.Stdout, m.Stderr)
}
