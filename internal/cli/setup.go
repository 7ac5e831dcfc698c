package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docsmith-dev/docsmith/internal/hook"
)

func init() {
	rootCmd.AddCommand(setupCmd)
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Install the pre-commit validation hook",
	Long: `Write a pre-commit hook into .git/hooks that runs 'docsmith check' and
aborts the commit when any check fails. An existing hook not written by
docsmith is never overwritten.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := hook.Install(rootDir)
		if err != nil {
			return err
		}
		fmt.Printf("Installed pre-commit hook at %s\n", path)
		fmt.Println("Commits will now abort when 'docsmith check' fails.")
		return nil
	},
}
