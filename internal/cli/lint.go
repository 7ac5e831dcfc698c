package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/docsmith-dev/docsmith/internal/pipeline"
	"github.com/docsmith-dev/docsmith/internal/tools"
)

func init() {
	rootCmd.AddCommand(lintCmd)
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Run the structural markdown lint",
	Long: `Check markdown syntax conventions (heading order, list formatting) across
the documentation tree. Run 'docsmith format --write' first if the tree may
be unformatted; formatting resolves whitespace issues that would otherwise
show up here as failures.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ts := buildTools(cfg)
		tree := buildTree(cfg)

		stage := pipeline.Stage{
			Name: "markdown-lint",
			Run: func(ctx context.Context) (*tools.Output, error) {
				return ts.structural.Run(ctx, tree.DocPaths)
			},
		}
		return runPipeline(cmd.Context(), []pipeline.Stage{stage})
	},
}
