// Package hook installs the pre-commit gate: a git hook that runs the
// read-only validation pipeline and aborts the commit on failure.
package hook

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrNotGitRepo is returned when the target has no .git directory.
	ErrNotGitRepo = errors.New("not a git repository")

	// ErrForeignHook is returned when a pre-commit hook already exists and
	// was not written by docsmith. It is never overwritten.
	ErrForeignHook = errors.New("existing pre-commit hook not managed by docsmith")
)

// The "docsmith" token in the script doubles as the ownership marker that
// makes reinstalling safe.
const script = `#!/bin/sh
# Pre-commit gate, installed by docsmith setup.
# Runs the read-only validation pipeline; a non-zero exit aborts the commit.
exec docsmith check
`

// Install writes the pre-commit hook into .git/hooks and returns its path.
// Reinstalling over a docsmith-managed hook is allowed; any other existing
// hook is left alone and reported as ErrForeignHook.
func Install(root string) (string, error) {
	gitDir := filepath.Join(root, ".git")
	info, err := os.Stat(gitDir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s has no .git directory", ErrNotGitRepo, root)
	}

	hookPath := filepath.Join(gitDir, "hooks", "pre-commit")
	if existing, err := os.ReadFile(hookPath); err == nil {
		if !strings.Contains(string(existing), "docsmith") {
			return "", fmt.Errorf("%w: %s", ErrForeignHook, hookPath)
		}
	}

	if err := os.MkdirAll(filepath.Dir(hookPath), 0755); err != nil {
		return "", fmt.Errorf("creating hooks directory: %w", err)
	}
	if err := os.WriteFile(hookPath, []byte(script), 0755); err != nil {
		return "", fmt.Errorf("writing hook: %w", err)
	}
	return hookPath, nil
}

// Installed reports whether a docsmith-managed pre-commit hook is in place.
func Installed(root string) bool {
	hookPath := filepath.Join(root, ".git", "hooks", "pre-commit")
	data, err := os.ReadFile(hookPath)
	if err != nil {
		return false
	}
	return strings.Contains(string(data), "docsmith")
}
