package pipeline

import (
	"context"

	"github.com/docsmith-dev/docsmith/internal/tools"
)

// Tree describes which files each stage operates on.
type Tree struct {
	// DocPaths are the globs handed to the formatter and structural linter.
	DocPaths []string
	// StylePaths is the explicit prose-lint include list. Directories not yet
	// onboarded to the style ruleset are excluded by this list, not by
	// ignoring their failures.
	StylePaths []string
}

// CheckStages builds the read-only pipeline: format verification first, then
// structural lint, then prose style.
func CheckStages(f tools.Formatter, sl tools.StructuralLinter, pl tools.ProseLinter, tree Tree) []Stage {
	return []Stage{
		{
			Name: "format-check",
			Run: func(ctx context.Context) (*tools.Output, error) {
				return f.Check(ctx, tree.DocPaths)
			},
		},
		lintStage(sl, tree),
		styleStage(pl, tree),
	}
}

// FixStages builds the fix pipeline: format-write first, then the same lint
// stages as check. Format must precede lint so whitespace fixes do not
// register as lint failures.
func FixStages(f tools.Formatter, sl tools.StructuralLinter, pl tools.ProseLinter, tree Tree) []Stage {
	return []Stage{
		{
			Name: "format-write",
			Run: func(ctx context.Context) (*tools.Output, error) {
				return f.Write(ctx, tree.DocPaths)
			},
		},
		lintStage(sl, tree),
		styleStage(pl, tree),
	}
}

func lintStage(sl tools.StructuralLinter, tree Tree) Stage {
	return Stage{
		Name: "markdown-lint",
		Run: func(ctx context.Context) (*tools.Output, error) {
			return sl.Run(ctx, tree.DocPaths)
		},
	}
}

func styleStage(pl tools.ProseLinter, tree Tree) Stage {
	return Stage{
		Name: "prose-style",
		Run: func(ctx context.Context) (*tools.Output, error) {
			return pl.Run(ctx, tree.StylePaths)
		},
	}
}
