package tools

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// run invokes an external binary and captures its output. Stdout and stderr
// are streamed to the provided writers while also being captured into the
// returned Output, so failures surface the tool's own messages verbatim.
// A non-zero exit from the tool is not an error here; it is reported through
// Output.ExitCode so the pipeline can keep running the remaining stages.
func run(ctx context.Context, bin string, args []string, dir string, stdout, stderr io.Writer) (*Output, error) {
	path, err := exec.LookPath(bin)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not on PATH (run `docsmith doctor`)", ErrToolNotFound, bin)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = dir

	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("executing %s: %w", bin, err)
	}

	return output, nil
}
