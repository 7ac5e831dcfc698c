package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(syncCmd)
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Download the prose linter's style rule packages",
	Long: `One-time setup step: fetch the style rule packages referenced by the prose
linter's configuration. Run this once after cloning, and again whenever the
configuration adds a new style package.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ts := buildTools(cfg)

		output, err := ts.prose.Sync(cmd.Context())
		if err != nil {
			return err
		}
		if output.ExitCode != 0 {
			return fmt.Errorf("style package sync failed (exit %d)", output.ExitCode)
		}
		fmt.Println("Style rule packages are up to date")
		return nil
	},
}
