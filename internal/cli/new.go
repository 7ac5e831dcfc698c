package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docsmith-dev/docsmith/internal/guide"
	"github.com/docsmith-dev/docsmith/internal/scaffold"
)

func init() {
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new <name> <category>",
	Short: "Scaffold a new guide from a category template",
	Long: `Create a new guide file from the category's template. The name becomes the
filename stem and, first letter capitalized, the document title.

Categories:
  how         mechanics reference (Quick Reference table, Basic Usage)
  understand  mental model (Core Concepts with a worked example)

Examples:
  docsmith new rebase-strategies how
  docsmith new branching-model understand`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return fmt.Errorf("usage: %s", cmd.UseLine())
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		category, err := guide.ParseCategory(args[1])
		if err != nil {
			return err
		}

		result, err := scaffold.Create(rootDir, name, category)
		if err != nil {
			return err
		}

		rel := result.Path
		if r, relErr := filepath.Rel(rootDir, result.Path); relErr == nil {
			rel = r
		}
		fmt.Printf("Created %s\n", rel)

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// The index tables are not edited here: inserting into free-form
		// prose is a judgment call unless the repo has adopted the manifest.
		fmt.Println("\nNext steps:")
		if _, statErr := os.Stat(filepath.Join(rootDir, cfg.ManifestPath)); statErr == nil {
			fmt.Printf("  1. Add the guide to %s\n", cfg.ManifestPath)
			fmt.Println("  2. Run 'docsmith index' to refresh the index tables")
		} else if len(cfg.IndexTargets) == 2 {
			fmt.Printf("  1. Update the index table in %s\n", cfg.IndexTargets[1])
			fmt.Printf("  2. Update the index table in %s\n", cfg.IndexTargets[0])
		} else {
			fmt.Printf("  1. Update the index tables in %s\n", strings.Join(cfg.IndexTargets, ", "))
		}
		return nil
	},
}
