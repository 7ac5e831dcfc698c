package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/docsmith-dev/docsmith/internal/pipeline"
	"github.com/docsmith-dev/docsmith/internal/tools"
)

var formatWrite bool

func init() {
	formatCmd.Flags().BoolVar(&formatWrite, "write", false, "Rewrite files instead of verifying")
	rootCmd.AddCommand(formatCmd)
}

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Verify or rewrite markdown formatting",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ts := buildTools(cfg)
		tree := buildTree(cfg)

		stage := pipeline.Stage{
			Name: "format-check",
			Run: func(ctx context.Context) (*tools.Output, error) {
				return ts.formatter.Check(ctx, tree.DocPaths)
			},
		}
		if formatWrite {
			stage = pipeline.Stage{
				Name: "format-write",
				Run: func(ctx context.Context) (*tools.Output, error) {
					return ts.formatter.Write(ctx, tree.DocPaths)
				},
			}
		}
		return runPipeline(cmd.Context(), []pipeline.Stage{stage})
	},
}
