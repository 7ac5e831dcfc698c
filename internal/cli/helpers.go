package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/docsmith-dev/docsmith/internal/config"
	"github.com/docsmith-dev/docsmith/internal/manifest"
	"github.com/docsmith-dev/docsmith/internal/pipeline"
	"github.com/docsmith-dev/docsmith/internal/tools"
)

// loadConfig reads the repo config for the --root directory.
func loadConfig() (*config.Config, error) {
	return config.Load(rootDir)
}

// toolset bundles the three external collaborators built from config.
type toolset struct {
	formatter  *tools.Prettier
	structural *tools.Markdownlint
	prose      *tools.Vale
}

func buildTools(cfg *config.Config) *toolset {
	return &toolset{
		formatter:  &tools.Prettier{Bin: cfg.FormatterBin, Dir: cfg.Root},
		structural: &tools.Markdownlint{Bin: cfg.StructuralBin, Config: cfg.LintConfig, Dir: cfg.Root},
		prose:      &tools.Vale{Bin: cfg.ProseBin, Config: cfg.StyleConfig, Dir: cfg.Root},
	}
}

func buildTree(cfg *config.Config) pipeline.Tree {
	return pipeline.Tree{
		DocPaths:   cfg.DocGlobs,
		StylePaths: cfg.StyleInclude,
	}
}

// indexStage returns an advisory stage verifying the index tables are
// current with the manifest, or nil when the repo has no manifest.
func indexStage(cfg *config.Config) *pipeline.Stage {
	manifestPath := filepath.Join(cfg.Root, cfg.ManifestPath)
	if _, err := os.Stat(manifestPath); err != nil {
		return nil
	}

	targets := cfg.IndexTargets
	return &pipeline.Stage{
		Name:     "index-current",
		Advisory: true,
		Run: func(ctx context.Context) (*tools.Output, error) {
			m, err := manifest.Load(manifestPath)
			if err != nil {
				return nil, err
			}
			var stale []string
			for _, target := range targets {
				path := filepath.Join(cfg.Root, target)
				current, err := manifest.CheckIndex(path, m)
				if err != nil {
					// Targets without markers are hand-maintained; skip them.
					continue
				}
				if !current {
					stale = append(stale, target)
				}
			}
			if len(stale) > 0 {
				return &tools.Output{
					ExitCode: 1,
					Stdout: fmt.Sprintf("index tables out of date in %s (run `docsmith index`)",
						strings.Join(stale, ", ")),
				}, nil
			}
			return &tools.Output{}, nil
		},
	}
}

// runPipeline executes the stages and converts a failed report into an
// error so cobra surfaces a non-zero exit.
func runPipeline(ctx context.Context, stages []pipeline.Stage) error {
	runner := &pipeline.Runner{Stages: stages}
	report := runner.Run(ctx)
	if report.Failed() {
		return fmt.Errorf("%d validation check(s) failed", report.FailedCount())
	}
	return nil
}
