package cli

import (
	"github.com/spf13/cobra"

	"github.com/docsmith-dev/docsmith/internal/pipeline"
)

func init() {
	rootCmd.AddCommand(fixCmd)
}

var fixCmd = &cobra.Command{
	Use:   "fix",
	Short: "Reformat every file, then run the lint checks",
	Long: `Run the formatter in write mode, then structural lint and prose style.
Formatting always runs first: it resolves the whitespace issues that would
otherwise register as lint failures. The formatter is idempotent — running
fix twice on a clean tree changes nothing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ts := buildTools(cfg)

		stages := pipeline.FixStages(ts.formatter, ts.structural, ts.prose, buildTree(cfg))
		if s := indexStage(cfg); s != nil {
			stages = append(stages, *s)
		}
		return runPipeline(cmd.Context(), stages)
	},
}
