package cli

import (
	"github.com/spf13/cobra"

	"github.com/docsmith-dev/docsmith/internal/pipeline"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run every validation check without modifying any file",
	Long: `Run the full validation pipeline in read-only mode: format verification,
structural lint, then prose style. Every stage runs even after a failure so
one invocation reports every problem; the exit code is non-zero if any
mandatory stage failed. This is what the pre-commit hook invokes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ts := buildTools(cfg)

		stages := pipeline.CheckStages(ts.formatter, ts.structural, ts.prose, buildTree(cfg))
		if s := indexStage(cfg); s != nil {
			stages = append(stages, *s)
		}
		return runPipeline(cmd.Context(), stages)
	},
}
