package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/docsmith-dev/docsmith/internal/pipeline"
	"github.com/docsmith-dev/docsmith/internal/tools"
)

func init() {
	rootCmd.AddCommand(styleCmd)
}

var styleCmd = &cobra.Command{
	Use:   "style",
	Short: "Run the prose style lint",
	Long: `Check writing-style rules (passive voice, word choice) over the configured
include list. Only files listed under style.include in .docsmith.yaml are
checked; directories not yet onboarded to the ruleset stay out of the
failure signal through that explicit, reviewable list.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ts := buildTools(cfg)
		tree := buildTree(cfg)

		stage := pipeline.Stage{
			Name: "prose-style",
			Run: func(ctx context.Context) (*tools.Output, error) {
				return ts.prose.Run(ctx, tree.StylePaths)
			},
		}
		return runPipeline(cmd.Context(), []pipeline.Stage{stage})
	},
}
