package tools

import (
	"context"
	"io"
)

// Prettier formats markdown via the prettier binary.
type Prettier struct {
	// Bin is the binary name or path. Defaults to "prettier" when empty.
	Bin string
	// Dir is the working directory for invocations (the repo root).
	Dir string
	// Stdout and Stderr can be set for testing; default to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

func (p *Prettier) bin() string {
	if p.Bin == "" {
		return "prettier"
	}
	return p.Bin
}

// Check verifies formatting with `prettier --check`.
func (p *Prettier) Check(ctx context.Context, paths []string) (*Output, error) {
	args := append([]string{"--check"}, paths...)
	return run(ctx, p.bin(), args, p.Dir, p.Stdout, p.Stderr)
}

// Write reformats in place with `prettier --write`.
func (p *Prettier) Write(ctx context.Context, paths []string) (*Output, error) {
	args := append([]string{"--write"}, paths...)
	return run(ctx, p.bin(), args, p.Dir, p.Stdout, p.Stderr)
}
