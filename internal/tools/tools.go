package tools

import (
	"context"
	"errors"
)

// ErrToolNotFound is returned when a tool binary is not on PATH.
var ErrToolNotFound = errors.New("tool not found")

// Output captures the result of one external tool invocation.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Formatter rewrites or verifies markdown formatting across files.
type Formatter interface {
	// Check verifies formatting without modifying any file.
	Check(ctx context.Context, paths []string) (*Output, error)
	// Write reformats files in place. The underlying formatter is idempotent.
	Write(ctx context.Context, paths []string) (*Output, error)
}

// StructuralLinter verifies markdown syntax conventions (heading order,
// list formatting) independent of prose.
type StructuralLinter interface {
	Run(ctx context.Context, paths []string) (*Output, error)
}

// ProseLinter checks writing-style rules against a curated set of files.
type ProseLinter interface {
	Run(ctx context.Context, paths []string) (*Output, error)
	// Sync downloads the linter's rule packages. One-time setup step.
	Sync(ctx context.Context) (*Output, error)
}
