package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/docsmith-dev/docsmith/internal/tools"
)

var printer = message.NewPrinter(language.English)

// Stage is one step of a pipeline run.
type Stage struct {
	// Name identifies the stage in the report (e.g., "format-check").
	Name string
	// Advisory stages report failures but do not affect the exit status.
	Advisory bool
	// Run invokes the underlying tool.
	Run func(ctx context.Context) (*tools.Output, error)
}

// StageResult is one entry of a pipeline report.
type StageResult struct {
	Tool     string
	Passed   bool
	ExitCode int
	Detail   string
	Advisory bool
}

// Report is the ordered outcome of one pipeline run.
type Report struct {
	Results []StageResult
}

// Failed reports whether any mandatory stage failed.
func (r *Report) Failed() bool {
	for _, res := range r.Results {
		if !res.Passed && !res.Advisory {
			return true
		}
	}
	return false
}

// FailedCount returns the number of failed mandatory stages.
func (r *Report) FailedCount() int {
	n := 0
	for _, res := range r.Results {
		if !res.Passed && !res.Advisory {
			n++
		}
	}
	return n
}

// Runner executes stages in order and aggregates their results.
type Runner struct {
	Stages []Stage
	// Out receives per-stage status lines and the summary. Defaults to os.Stdout.
	Out io.Writer
}

// Run executes every stage in order. It never short-circuits: a failing
// stage is recorded and the run continues, so a single invocation surfaces
// every problem at once.
func (r *Runner) Run(ctx context.Context) *Report {
	out := r.Out
	if out == nil {
		out = os.Stdout
	}

	report := &Report{}
	for _, stage := range r.Stages {
		res := StageResult{Tool: stage.Name, Advisory: stage.Advisory}

		output, err := stage.Run(ctx)
		switch {
		case err != nil:
			res.Passed = false
			res.ExitCode = 1
			res.Detail = err.Error()
		case output.ExitCode != 0:
			res.Passed = false
			res.ExitCode = output.ExitCode
			res.Detail = strings.TrimSpace(output.Stdout + "\n" + output.Stderr)
		default:
			res.Passed = true
		}

		printStatus(out, res)
		report.Results = append(report.Results, res)
	}

	printSummary(out, report)
	return report
}

func printStatus(out io.Writer, res StageResult) {
	switch {
	case res.Passed:
		fmt.Fprintf(out, "[ OK ] %s\n", res.Tool)
	case res.Advisory:
		fmt.Fprintf(out, "[WARN] %s (advisory)\n", res.Tool)
	default:
		fmt.Fprintf(out, "[FAIL] %s (exit %d)\n", res.Tool, res.ExitCode)
	}
	if !res.Passed && res.Detail != "" {
		// Tool output passes through unmodified.
		fmt.Fprintln(out, indent(res.Detail))
	}
}

func printSummary(out io.Writer, report *Report) {
	total := len(report.Results)
	passed := 0
	for _, res := range report.Results {
		if res.Passed {
			passed++
		}
	}
	if failed := report.FailedCount(); failed > 0 {
		printer.Fprintf(out, "\n%d of %d checks failed\n", failed, total)
		return
	}
	printer.Fprintf(out, "\n%d of %d checks passed\n", passed, total)
}

func indent(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}
