package tools

import (
	"context"
	"io"
)

// Vale checks prose style via the vale binary.
type Vale struct {
	// Bin is the binary name or path. Defaults to "vale" when empty.
	Bin string
	// Config is the path to the .vale.ini configuration. Optional; vale
	// discovers its config when empty.
	Config string
	// Dir is the working directory for invocations (the repo root).
	Dir string
	// Stdout and Stderr can be set for testing; default to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

func (v *Vale) bin() string {
	if v.Bin == "" {
		return "vale"
	}
	return v.Bin
}

func (v *Vale) configArgs() []string {
	if v.Config == "" {
		return nil
	}
	return []string{"--config", v.Config}
}

// Run checks prose style over the given paths. Callers pass the configured
// include list, not the whole tree: directories not yet onboarded to the
// style ruleset stay out of the failure signal by this explicit list.
func (v *Vale) Run(ctx context.Context, paths []string) (*Output, error) {
	args := append(v.configArgs(), paths...)
	return run(ctx, v.bin(), args, v.Dir, v.Stdout, v.Stderr)
}

// Sync downloads the style rule packages referenced by the configuration.
func (v *Vale) Sync(ctx context.Context) (*Output, error) {
	args := append(v.configArgs(), "sync")
	return run(ctx, v.bin(), args, v.Dir, v.Stdout, v.Stderr)
}
