package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docsmith-dev/docsmith/internal/doctor"
	"github.com/docsmith-dev/docsmith/internal/hook"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the external tools",
	Long: `Verify that the formatter, structural linter, and prose linter are on
PATH and meet the minimum versions configured under tools.min_versions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		checks := []doctor.Tool{
			{Name: "formatter", Bin: cfg.FormatterBin, MinVersion: cfg.MinVersions[cfg.FormatterBin]},
			{Name: "structural lint", Bin: cfg.StructuralBin, MinVersion: cfg.MinVersions[cfg.StructuralBin]},
			{Name: "prose lint", Bin: cfg.ProseBin, MinVersion: cfg.MinVersions[cfg.ProseBin]},
		}

		fmt.Println("Tool check:")
		toolErr := doctor.Check(cmd.Context(), os.Stdout, checks)

		fmt.Println("Pre-commit gate:")
		if hook.Installed(rootDir) {
			fmt.Println("  [ OK ] hook installed")
		} else {
			fmt.Println("  [INFO] hook not installed (run `docsmith setup`)")
		}

		return toolErr
	},
}
