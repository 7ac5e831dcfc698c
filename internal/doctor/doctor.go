// Package doctor verifies the external tool binaries docsmith shells out to:
// that each is on PATH, and that its version meets the configured minimum.
package doctor

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Tool names one external collaborator to check.
type Tool struct {
	Name string // role, e.g., "formatter"
	Bin  string // binary name or path
	// MinVersion is the lowest accepted version ("" = any version is fine).
	MinVersion string
}

// Result is the outcome of checking one tool.
type Result struct {
	Tool    Tool
	Found   bool
	Path    string
	Version string
	OK      bool
	Detail  string
}

var versionPattern = regexp.MustCompile(`v?(\d+\.\d+\.\d+)`)

// Check probes every tool and prints one status line each. The returned
// error is non-nil if any tool is missing or below its minimum version.
func Check(ctx context.Context, w io.Writer, tools []Tool) error {
	failed := 0
	for _, tool := range tools {
		res := checkTool(ctx, tool)
		printResult(w, res)
		if !res.OK {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d tools not ready", failed, len(tools))
	}
	return nil
}

func checkTool(ctx context.Context, tool Tool) Result {
	res := Result{Tool: tool}

	path, err := exec.LookPath(tool.Bin)
	if err != nil {
		res.Detail = fmt.Sprintf("%s not found on PATH", tool.Bin)
		return res
	}
	res.Found = true
	res.Path = path

	version, err := probeVersion(ctx, path)
	if err != nil {
		// A binary that exists but won't report a version is still usable
		// when no minimum is configured.
		if tool.MinVersion == "" {
			res.OK = true
			return res
		}
		res.Detail = fmt.Sprintf("cannot determine version: %v", err)
		return res
	}
	res.Version = version

	if tool.MinVersion == "" {
		res.OK = true
		return res
	}

	ok, err := meetsMinimum(version, tool.MinVersion)
	if err != nil {
		res.Detail = err.Error()
		return res
	}
	if !ok {
		res.Detail = fmt.Sprintf("version %s is below minimum %s", version, tool.MinVersion)
		return res
	}
	res.OK = true
	return res
}

// probeVersion runs `<bin> --version` and extracts the first semver token.
func probeVersion(ctx context.Context, path string) (string, error) {
	out, err := exec.CommandContext(ctx, path, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("running %s --version: %w", path, err)
	}
	m := versionPattern.FindStringSubmatch(string(out))
	if m == nil {
		return "", fmt.Errorf("no version in output %q", strings.TrimSpace(string(out)))
	}
	return m[1], nil
}

// meetsMinimum compares two version strings with "v"-prefix tolerance.
func meetsMinimum(current, minimum string) (bool, error) {
	cv, err := semver.NewVersion(strings.TrimPrefix(current, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", current, err)
	}
	mv, err := semver.NewVersion(strings.TrimPrefix(minimum, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing minimum version %q: %w", minimum, err)
	}
	return cv.Compare(mv) >= 0, nil
}

func printResult(w io.Writer, res Result) {
	switch {
	case res.OK && res.Version != "":
		fmt.Fprintf(w, "  [ OK ] %s: %s %s at %s\n", res.Tool.Name, res.Tool.Bin, res.Version, res.Path)
	case res.OK:
		fmt.Fprintf(w, "  [ OK ] %s: %s at %s\n", res.Tool.Name, res.Tool.Bin, res.Path)
	case !res.Found:
		fmt.Fprintf(w, "  [MISS] %s: %s\n", res.Tool.Name, res.Detail)
	default:
		fmt.Fprintf(w, "  [FAIL] %s: %s\n", res.Tool.Name, res.Detail)
	}
}
