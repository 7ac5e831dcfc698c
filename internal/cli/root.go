package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// rootDir is the repository root every command operates on.
var rootDir string

var rootCmd = &cobra.Command{
	Use:   "docsmith",
	Short: "Scaffolding and validation for markdown guide repositories",
	Long: `docsmith creates new guide files from category templates and runs the
formatting, structural lint, and prose-style checks over a markdown
knowledge base. The file tree is the only state: the scaffolder writes one
file, the pipeline reads them all.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", ".", "Repository root to operate on")
}

// Execute runs the root command with build info injected via ldflags and
// returns the process exit code.
func Execute(version, commit, date string) int {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
